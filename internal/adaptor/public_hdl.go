package adaptor

import (
	"net/http"

	"goppo-soppo/internal/usecase"
	"goppo-soppo/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PublicHandler struct {
	service usecase.PublicService
	library usecase.LibraryService
	log     *zap.Logger
}

func NewPublicHandler(service usecase.PublicService, library usecase.LibraryService, log *zap.Logger) *PublicHandler {
	return &PublicHandler{
		service: service,
		library: library,
		log:     log,
	}
}

// Home handles GET /api/public/home
func (h *PublicHandler) Home(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Home(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "load home feed")
		return
	}

	utils.ResponseSuccess(w, "Home feed", resp)
}

// Search handles GET /api/public/search?q=
func (h *PublicHandler) Search(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		handleServiceError(w, h.log, err, "search")
		return
	}

	utils.ResponseSuccess(w, "Search results", resp)
}

// Genres handles GET /api/public/genres
func (h *PublicHandler) Genres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.service.Genres(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "load genres")
		return
	}

	utils.ResponseSuccess(w, "Genres", genres)
}

// WriterDetail handles GET /api/public/writer/{id}
func (h *PublicHandler) WriterDetail(w http.ResponseWriter, r *http.Request) {
	writerID, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid writer ID", nil)
		return
	}

	resp, err := h.service.WriterDetail(r.Context(), writerID)
	if err != nil {
		handleServiceError(w, h.log, err, "load writer")
		return
	}

	utils.ResponseSuccess(w, "Writer detail", resp)
}

// StoryMeta handles GET /api/public/story/{id}/meta. The route is
// public; a session, when present, fills in isLiked.
func (h *PublicHandler) StoryMeta(w http.ResponseWriter, r *http.Request) {
	storyID, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid story ID", nil)
		return
	}

	identity, _ := utils.GetIdentityFromContext(r.Context())

	resp, err := h.library.StoryMeta(r.Context(), identity, storyID)
	if err != nil {
		handleServiceError(w, h.log, err, "load story meta")
		return
	}

	utils.ResponseSuccess(w, "Story meta", resp)
}
