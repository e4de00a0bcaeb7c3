package session

import (
	"context"
	"testing"
	"time"

	"goppo-soppo/internal/data/entity"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func newTestStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisStoreWithClient(client, 24*time.Hour), mr
}

func TestSessionRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	identity := entity.Identity{
		UserID: uuid.New(),
		Role:   entity.RoleUser,
		Name:   "A",
	}

	token, err := store.Create(ctx, identity)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	if token == "" {
		t.Fatalf("expected non-empty token")
	}

	got, err := store.Get(ctx, token)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if got == nil {
		t.Fatalf("expected session, got none")
	}
	if got.UserID != identity.UserID || got.Role != identity.Role || got.Name != identity.Name {
		t.Fatalf("identity mismatch: got %+v want %+v", got, identity)
	}
}

func TestSessionUnknownToken(t *testing.T) {
	store, _ := newTestStore(t)

	got, err := store.Get(context.Background(), uuid.New().String())
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if got != nil {
		t.Fatalf("expected no session for unknown token, got %+v", got)
	}
}

func TestSessionExpiresAfterTTL(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	token, err := store.Create(ctx, entity.Identity{UserID: uuid.New(), Role: entity.RoleUser, Name: "A"})
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	mr.FastForward(24*time.Hour + time.Second)

	got, err := store.Get(ctx, token)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if got != nil {
		t.Fatalf("session should have expired")
	}
}

func TestSessionDelete(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	token, err := store.Create(ctx, entity.Identity{UserID: uuid.New(), Role: entity.RoleAdmin, Name: "Admin"})
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	if err := store.Delete(ctx, token); err != nil {
		t.Fatalf("delete session: %v", err)
	}
	got, err := store.Get(ctx, token)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if got != nil {
		t.Fatalf("session should be gone after logout")
	}

	// Deleting again is a no-op.
	if err := store.Delete(ctx, token); err != nil {
		t.Fatalf("second delete should not fail: %v", err)
	}
}
