package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/chainsafe/aa-bridge-middleware/pkg/types"
)

// JWTValidator issues and validates HS256 session tokens whose subject is the
// caller address.
type JWTValidator struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTValidator creates a new JWT validator
func NewJWTValidator(secret []byte, issuer string, ttl time.Duration) *JWTValidator {
	return &JWTValidator{
		secret: secret,
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
}

// IssueToken returns a signed token for caller and its expiry.
func (v *JWTValidator) IssueToken(caller types.Address) (string, time.Time, error) {
	if !v.IsConfigured() {
		return "", time.Time{}, fmt.Errorf("jwt secret not configured")
	}

	now := v.now()
	expiresAt := now.Add(v.ttl)
	claims := jwt.RegisteredClaims{
		Subject:   caller.String(),
		Issuer:    v.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// ValidateToken validates a JWT token and returns the caller it was issued to
func (v *JWTValidator) ValidateToken(tokenString string) (types.Address, error) {
	if !v.IsConfigured() {
		return types.Address{}, fmt.Errorf("jwt secret not configured")
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(v.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.now),
	)
	if err != nil {
		return types.Address{}, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return types.Address{}, fmt.Errorf("invalid token")
	}

	caller, err := types.HexToAddress(claims.Subject)
	if err != nil {
		return types.Address{}, fmt.Errorf("invalid token subject: %w", err)
	}
	return caller, nil
}

// IsConfigured returns true if a signing secret is set
func (v *JWTValidator) IsConfigured() bool {
	return len(v.secret) > 0
}
