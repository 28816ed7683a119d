package auth

import (
	"bytes"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/chainsafe/aa-bridge-middleware/pkg/app/errors"
	apphttp "github.com/chainsafe/aa-bridge-middleware/pkg/app/http"
	"github.com/chainsafe/aa-bridge-middleware/pkg/types"
)

const (
	// HeaderCaller carries the hex caller address for signed requests.
	HeaderCaller = "X-Caller"
	// HeaderSignature carries the hex ed25519 signature over RequestDigest.
	HeaderSignature = "X-Signature"
	// HeaderTimestamp carries the Unix seconds covered by the signature.
	HeaderTimestamp = "X-Timestamp"

	maxSignedBody = 1 << 20
)

type authOptions struct {
	allowSignature bool
	window         time.Duration
	now            func() time.Time
}

// Option configures Authenticate.
type Option func(*authOptions)

// WithoutSignatures rejects X-Caller signed requests; only bearer tokens authenticate.
func WithoutSignatures() Option {
	return func(o *authOptions) { o.allowSignature = false }
}

// WithRequestWindow sets how far X-Timestamp may drift from the server clock.
// A signed request is accepted once within that window.
func WithRequestWindow(window time.Duration) Option {
	return func(o *authOptions) {
		if window > 0 {
			o.window = window
		}
	}
}

// WithClock overrides the clock used to check X-Timestamp.
func WithClock(now func() time.Time) Option {
	return func(o *authOptions) { o.now = now }
}

// Authenticate resolves the caller from a bearer token or from signed request
// headers. Requests without credentials pass through unauthenticated; invalid
// credentials are rejected, as are replays of an accepted signed request.
func Authenticate(validator *JWTValidator, opts ...Option) func(http.Handler) http.Handler {
	o := authOptions{allowSignature: true, window: DefaultRequestWindow, now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	guard := newReplayGuard(defaultSeenRequests)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if bearer, ok := bearerToken(r); ok {
				if validator == nil || !validator.IsConfigured() {
					apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(nil, "bearer tokens are not enabled"))
					return
				}
				caller, err := validator.ValidateToken(bearer)
				if err != nil {
					apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(err, "invalid token"))
					return
				}
				next.ServeHTTP(w, r.WithContext(WithCaller(r.Context(), caller, "jwt")))
				return
			}

			callerHex := r.Header.Get(HeaderCaller)
			if callerHex == "" {
				next.ServeHTTP(w, r)
				return
			}
			if !o.allowSignature {
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(nil, "signed requests are not enabled"))
				return
			}

			now := o.now()
			timestamp, err := strconv.ParseInt(r.Header.Get(HeaderTimestamp), 10, 64)
			if err != nil || !withinWindow(timestamp, now, o.window) {
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(err, "request timestamp outside allowed window"))
				return
			}

			body, err := io.ReadAll(io.LimitReader(r.Body, maxSignedBody))
			if err != nil {
				apphttp.DefaultErrorHandler(w, apperrors.BadRequestError(err, "failed to read request"))
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

			caller, err := VerifyRequestSignature(callerHex, r.Header.Get(HeaderSignature), r.Method, r.URL.Path, timestamp, body)
			if err != nil {
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(err, "invalid request signature"))
				return
			}
			// Entries outlive the latest moment the timestamp is still accepted.
			expires := time.Unix(timestamp, 0).Add(o.window + time.Second)
			if !guard.observe(caller, RequestDigest(r.Method, r.URL.Path, timestamp, body), expires, now) {
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(nil, "signed request already used"))
				return
			}
			next.ServeHTTP(w, r.WithContext(WithCaller(r.Context(), caller, "signature")))
		})
	}
}

// RequireCaller returns the authenticated caller or an authorization error.
func RequireCaller(r *http.Request) (types.Address, error) {
	caller, ok := CallerFromContext(r.Context())
	if !ok {
		return types.Address{}, apperrors.UnAuthorizedError(nil, "caller authentication required")
	}
	return caller, nil
}

func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	return token, token != ""
}
