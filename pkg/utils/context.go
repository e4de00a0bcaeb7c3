package utils

import (
	"context"

	"goppo-soppo/internal/data/entity"
)

type contextKey string

const (
	IdentityKey contextKey = "identity"
	TokenKey    contextKey = "token"
)

// SetIdentityContext attaches the resolved identity to the request context.
func SetIdentityContext(ctx context.Context, identity entity.Identity) context.Context {
	return context.WithValue(ctx, IdentityKey, identity)
}

// GetIdentityFromContext returns the request identity. The zero Identity
// (and ok=false) means the request is anonymous.
func GetIdentityFromContext(ctx context.Context) (entity.Identity, bool) {
	val := ctx.Value(IdentityKey)
	if val == nil {
		return entity.Identity{}, false
	}

	identity, ok := val.(entity.Identity)
	if !ok || !identity.IsAuthenticated() {
		return entity.Identity{}, false
	}

	return identity, true
}

func SetTokenContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, TokenKey, token)
}

func GetTokenFromContext(ctx context.Context) (string, bool) {
	val := ctx.Value(TokenKey)
	if val == nil {
		return "", false
	}

	token, ok := val.(string)
	return token, ok
}
