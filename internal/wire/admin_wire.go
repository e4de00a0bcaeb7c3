package wire

import (
	"goppo-soppo/internal/adaptor"
	"goppo-soppo/pkg/middleware"
	"goppo-soppo/pkg/session"
	"goppo-soppo/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAdmin(
	r chi.Router,
	adminHandler *adaptor.AdminHandler,
	sessions session.Store,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== ADMIN ROUTES ====================
	// Session first, then the role gate; the service re-checks both.
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(sessions, config.Session.CookieName, log))
		r.Use(middleware.Admin(log))

		r.Post("/api/admin/writers", adminHandler.AddWriter)
		r.Get("/api/admin/writers", adminHandler.ListWriters)
		r.Post("/api/admin/stories", adminHandler.AddStory)
		r.Get("/api/admin/stories", adminHandler.ListStories)
		r.Post("/api/admin/playlists", adminHandler.CreatePlaylist)
		r.Get("/api/admin/playlists", adminHandler.ListPlaylists)
	})
}
