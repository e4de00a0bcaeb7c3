package wire

import (
	"goppo-soppo/internal/adaptor"
	"goppo-soppo/pkg/middleware"
	"goppo-soppo/pkg/session"
	"goppo-soppo/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	sessions session.Store,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(sessions, config.Session.CookieName, log))
		r.Post("/api/user/like", userHandler.ToggleLike)
		r.Get("/api/user/library", userHandler.GetLibrary)
	})
}
