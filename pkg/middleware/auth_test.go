package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"goppo-soppo/internal/data/entity"
	"goppo-soppo/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type stubSessions struct {
	token    string
	identity entity.Identity
}

func (s *stubSessions) Create(ctx context.Context, identity entity.Identity) (string, error) {
	return s.token, nil
}

func (s *stubSessions) Get(ctx context.Context, token string) (*entity.Identity, error) {
	if token == s.token {
		id := s.identity
		return &id, nil
	}
	return nil, nil
}

func (s *stubSessions) Delete(ctx context.Context, token string) error { return nil }

func TestAuthSessionRejectsMissingToken(t *testing.T) {
	sessions := &stubSessions{token: "tok"}
	handler := AuthSession(sessions, "goppo_session", zap.NewNop())(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatalf("handler should not run without a session")
		}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/user/library", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthSessionResolvesIdentityFromCookie(t *testing.T) {
	identity := entity.Identity{UserID: uuid.New(), Role: entity.RoleUser, Name: "A"}
	sessions := &stubSessions{token: "tok", identity: identity}

	var got entity.Identity
	var ok bool
	handler := AuthSession(sessions, "goppo_session", zap.NewNop())(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, ok = utils.GetIdentityFromContext(r.Context())
		}))

	req := httptest.NewRequest(http.MethodGet, "/api/user/library", nil)
	req.AddCookie(&http.Cookie{Name: "goppo_session", Value: "tok"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !ok || got.UserID != identity.UserID {
		t.Fatalf("identity not set in context: %+v", got)
	}
}

func TestAuthSessionAcceptsBearerFallback(t *testing.T) {
	identity := entity.Identity{UserID: uuid.New(), Role: entity.RoleUser, Name: "A"}
	sessions := &stubSessions{token: "tok", identity: identity}

	handler := AuthSession(sessions, "goppo_session", zap.NewNop())(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/api/user/library", nil)
	req.Header.Set("Authorization", "Bearer tok")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestOptionalSessionLetsAnonymousThrough(t *testing.T) {
	sessions := &stubSessions{token: "tok"}

	var sawIdentity bool
	handler := OptionalSession(sessions, "goppo_session", zap.NewNop())(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, sawIdentity = utils.GetIdentityFromContext(r.Context())
		}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/public/story/x/meta", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if sawIdentity {
		t.Fatalf("anonymous request should carry no identity")
	}
}

func TestAdminRejectsNonAdmin(t *testing.T) {
	identity := entity.Identity{UserID: uuid.New(), Role: entity.RoleUser, Name: "A"}
	sessions := &stubSessions{token: "tok", identity: identity}

	handler := AuthSession(sessions, "goppo_session", zap.NewNop())(
		Admin(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatalf("non-admin must not reach admin handler")
		})))

	req := httptest.NewRequest(http.MethodPost, "/api/admin/writers", nil)
	req.Header.Set("Authorization", "Bearer tok")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestAdminAllowsAdminRole(t *testing.T) {
	identity := entity.Identity{UserID: uuid.New(), Role: entity.RoleAdmin, Name: "Admin"}
	sessions := &stubSessions{token: "tok", identity: identity}

	called := false
	handler := AuthSession(sessions, "goppo_session", zap.NewNop())(
		Admin(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		})))

	req := httptest.NewRequest(http.MethodPost, "/api/admin/writers", nil)
	req.Header.Set("Authorization", "Bearer tok")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK || !called {
		t.Fatalf("admin should pass: status %d called %v", rec.Code, called)
	}
}
