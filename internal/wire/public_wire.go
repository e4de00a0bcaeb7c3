package wire

import (
	"goppo-soppo/internal/adaptor"
	"goppo-soppo/pkg/middleware"
	"goppo-soppo/pkg/session"
	"goppo-soppo/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePublic(
	r chi.Router,
	publicHandler *adaptor.PublicHandler,
	sessions session.Store,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/public/home", publicHandler.Home)
	r.Get("/api/public/search", publicHandler.Search)
	r.Get("/api/public/genres", publicHandler.Genres)
	r.Get("/api/public/writer/{id}", publicHandler.WriterDetail)

	// Story meta is public but shows isLiked when a session rides
	// along.
	r.With(middleware.OptionalSession(sessions, config.Session.CookieName, log)).
		Get("/api/public/story/{id}/meta", publicHandler.StoryMeta)
}
