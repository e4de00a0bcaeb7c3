package middleware

import (
	"net/http"
	"strings"

	"goppo-soppo/pkg/session"
	"goppo-soppo/pkg/utils"

	"go.uber.org/zap"
)

// extractToken reads the session token from the session cookie, falling
// back to an Authorization: Bearer header.
func extractToken(r *http.Request, cookieName string) string {
	if cookie, err := r.Cookie(cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	return ""
}

// AuthSession requires a valid session and puts the identity into the
// request context.
func AuthSession(sessions session.Store, cookieName string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r, cookieName)
			if token == "" {
				utils.ResponseUnauthorized(w, "unauthorized")
				return
			}

			identity, err := sessions.Get(r.Context(), token)
			if err != nil {
				logger.Error("Failed to validate session", zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if identity == nil {
				logger.Warn("Invalid or expired session")
				utils.ResponseUnauthorized(w, "unauthorized")
				return
			}

			ctx := utils.SetIdentityContext(r.Context(), *identity)
			ctx = utils.SetTokenContext(ctx, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalSession resolves the identity when a valid session is present
// but lets anonymous requests through. Used by endpoints whose response
// varies with the viewer (playlist detail, story meta, /me).
func OptionalSession(sessions session.Store, cookieName string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r, cookieName)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			identity, err := sessions.Get(r.Context(), token)
			if err != nil {
				logger.Error("Failed to validate session", zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if identity == nil {
				// Stale cookie: treat the request as anonymous.
				next.ServeHTTP(w, r)
				return
			}

			ctx := utils.SetIdentityContext(r.Context(), *identity)
			ctx = utils.SetTokenContext(ctx, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Admin checks the role carried by the session identity. Must be
// chained after AuthSession.
func Admin(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := utils.GetIdentityFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "unauthorized")
				return
			}

			if !identity.IsAdmin() {
				logger.Warn("Admin check: non-admin access attempt",
					zap.String("user_id", identity.UserID.String()),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
