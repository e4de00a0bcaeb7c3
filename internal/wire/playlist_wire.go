package wire

import (
	"goppo-soppo/internal/adaptor"
	"goppo-soppo/pkg/middleware"
	"goppo-soppo/pkg/session"
	"goppo-soppo/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePlaylist(
	r chi.Router,
	playlistHandler *adaptor.PlaylistHandler,
	sessions session.Store,
	config *utils.Config,
	log *zap.Logger,
) {
	cookie := config.Session.CookieName
	requireAuth := middleware.AuthSession(sessions, cookie, log)
	optionalAuth := middleware.OptionalSession(sessions, cookie, log)

	// Detail is readable without a session for public and global
	// playlists; the service decides per playlist.
	r.With(optionalAuth).Get("/api/playlists/{id}", playlistHandler.Detail)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(requireAuth)
		r.Get("/api/playlists", playlistHandler.List)
		r.Post("/api/playlists", playlistHandler.Create)
		r.Put("/api/playlists/{id}", playlistHandler.Update)
		r.Delete("/api/playlists/{id}", playlistHandler.Delete)
		r.Post("/api/playlists/{id}/items", playlistHandler.AddItem)
		r.Delete("/api/playlists/{id}/items/{storyId}", playlistHandler.RemoveItem)
	})
}
