// Package authctx propagates the verified request principal (the
// claims of a successfully verified access token) through the request
// context. The principal lives only for the duration of the request.
package authctx

import (
	"context"
	"errors"

	"github.com/trendtrails/server/internal/auth/token"
)

// contextKey is an unexported type to prevent collisions with other packages.
type contextKey struct{}

var claimsKey = contextKey{}

// ErrNoClaims is returned when no principal is attached to the context.
var ErrNoClaims = errors.New("authctx: no claims in context")

// Set attaches verified claims to the context.
func Set(ctx context.Context, claims *token.AccessClaims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// Get retrieves the verified claims from the context.
func Get(ctx context.Context) (*token.AccessClaims, bool) {
	claims, ok := ctx.Value(claimsKey).(*token.AccessClaims)
	return claims, ok
}

// GetOrError retrieves the verified claims, returning ErrNoClaims when
// the request was not authenticated.
func GetOrError(ctx context.Context) (*token.AccessClaims, error) {
	claims, ok := Get(ctx)
	if !ok {
		return nil, ErrNoClaims
	}
	return claims, nil
}

// MustGet retrieves the verified claims and panics when absent. Use in
// handlers guarded by bearer authentication, where middleware
// guarantees a principal exists.
func MustGet(ctx context.Context) *token.AccessClaims {
	claims, ok := Get(ctx)
	if !ok {
		panic("authctx: claims not found in context")
	}
	return claims
}
