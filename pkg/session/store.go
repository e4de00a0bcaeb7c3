package session

import (
	"context"

	"goppo-soppo/internal/data/entity"
)

// Store persists session tokens. A session binds an opaque token to an
// Identity with a fixed lifetime; reads never renew the TTL.
type Store interface {
	Create(ctx context.Context, identity entity.Identity) (string, error)
	Get(ctx context.Context, token string) (*entity.Identity, error)
	Delete(ctx context.Context, token string) error
}
