package wire

import (
	"goppo-soppo/internal/adaptor"
	"goppo-soppo/pkg/middleware"
	"goppo-soppo/pkg/session"
	"goppo-soppo/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	sessions session.Store,
	config *utils.Config,
	log *zap.Logger,
) {
	cookie := config.Session.CookieName

	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/auth/register", authHandler.Register)
	r.Post("/api/auth/verify-otp", authHandler.VerifyOTP)
	r.Post("/api/auth/login", authHandler.Login)

	// Me works with or without a session.
	r.With(middleware.OptionalSession(sessions, cookie, log)).Get("/api/auth/me", authHandler.Me)

	// ==================== PROTECTED ROUTES ====================
	r.With(middleware.AuthSession(sessions, cookie, log)).Post("/api/auth/logout", authHandler.Logout)
}
