package auth

import (
	"crypto/ed25519"
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/chainsafe/aa-bridge-middleware/pkg/types"
)

const loginDomain = "aa-bridge-middleware/login"

// VerifySignature verifies an ed25519 signature by pub over msg.
func VerifySignature(pub types.Address, msg []byte, sig types.Signature) bool {
	return ed25519.Verify(ed25519.PublicKey(pub[:]), msg, sig[:])
}

// VerifySignatureBytes is VerifySignature for signatures of unchecked length.
// Anything but 64 bytes fails.
func VerifySignatureBytes(pub types.Address, msg, sig []byte) bool {
	s, err := types.BytesToSignature(sig)
	if err != nil {
		return false
	}
	return VerifySignature(pub, msg, s)
}

// RequestDigest is the message a caller signs to authenticate an HTTP request:
// H(METHOD ‖ path ‖ le64(timestamp) ‖ body).
func RequestDigest(method, path string, timestamp int64, body []byte) []byte {
	return Hash([]byte(strings.ToUpper(method)), []byte(path), LE64(uint64(timestamp)), body).Bytes()
}

// VerifyRequestSignature checks the X-Caller / X-Signature header pair
// against the request and returns the authenticated caller.
func VerifyRequestSignature(callerHex, signatureHex, method, path string, timestamp int64, body []byte) (types.Address, error) {
	caller, err := types.HexToAddress(callerHex)
	if err != nil {
		return types.Address{}, fmt.Errorf("invalid caller: %w", err)
	}

	sigBytes, err := hexutil.Decode(signatureHex)
	if err != nil {
		return types.Address{}, fmt.Errorf("invalid signature hex: %w", err)
	}
	if len(sigBytes) != types.SignatureLength {
		return types.Address{}, fmt.Errorf("invalid signature length: expected %d, got %d", types.SignatureLength, len(sigBytes))
	}

	if !VerifySignatureBytes(caller, RequestDigest(method, path, timestamp, body), sigBytes) {
		return types.Address{}, fmt.Errorf("request signature does not match caller")
	}
	return caller, nil
}

// LoginDigest is the message signed to obtain a session token.
func LoginDigest(caller types.Address, timestamp int64) []byte {
	return Hash([]byte(loginDomain), caller[:], LE64(uint64(timestamp))).Bytes()
}

// VerifyLogin checks a login signature and that timestamp lies within skew of now.
func VerifyLogin(caller types.Address, timestamp int64, sig types.Signature, now time.Time, skew time.Duration) error {
	if !withinWindow(timestamp, now, skew) {
		return fmt.Errorf("login timestamp outside allowed window")
	}
	if !VerifySignature(caller, LoginDigest(caller, timestamp), sig) {
		return fmt.Errorf("login signature does not match caller")
	}
	return nil
}

func withinWindow(timestamp int64, now time.Time, skew time.Duration) bool {
	signedAt := time.Unix(timestamp, 0)
	return !signedAt.Before(now.Add(-skew)) && !signedAt.After(now.Add(skew))
}
