package auth

import (
	"context"

	"github.com/chainsafe/aa-bridge-middleware/pkg/types"
)

// Context keys for authentication data
type contextKey string

const (
	// ContextKeyCaller is the context key for the authenticated caller identity
	ContextKeyCaller contextKey = "caller"
	// ContextKeyAuthMethod records how the caller was authenticated
	ContextKeyAuthMethod contextKey = "auth_method"
)

// WithCaller adds the authenticated caller to the context
func WithCaller(ctx context.Context, caller types.Address, method string) context.Context {
	ctx = context.WithValue(ctx, ContextKeyCaller, caller)
	return context.WithValue(ctx, ContextKeyAuthMethod, method)
}

// CallerFromContext retrieves the authenticated caller from the context
func CallerFromContext(ctx context.Context) (types.Address, bool) {
	caller, ok := ctx.Value(ContextKeyCaller).(types.Address)
	return caller, ok
}

// AuthMethodFromContext returns "signature" or "jwt"
func AuthMethodFromContext(ctx context.Context) string {
	m, _ := ctx.Value(ContextKeyAuthMethod).(string)
	return m
}
