package adaptor

import (
	"encoding/json"
	"net/http"

	"goppo-soppo/internal/dto/request"
	"goppo-soppo/internal/usecase"
	"goppo-soppo/pkg/utils"

	"go.uber.org/zap"
)

type UserHandler struct {
	library usecase.LibraryService
	log     *zap.Logger
}

func NewUserHandler(library usecase.LibraryService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		library: library,
		log:     log,
	}
}

// ToggleLike handles POST /api/user/like
func (h *UserHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	var req request.ToggleLikeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	identity, _ := utils.GetIdentityFromContext(r.Context())

	resp, err := h.library.ToggleLike(r.Context(), identity, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "toggle like")
		return
	}

	utils.ResponseSuccess(w, "Like toggled", resp)
}

// GetLibrary handles GET /api/user/library
func (h *UserHandler) GetLibrary(w http.ResponseWriter, r *http.Request) {
	identity, _ := utils.GetIdentityFromContext(r.Context())

	resp, err := h.library.GetLibrary(r.Context(), identity)
	if err != nil {
		handleServiceError(w, h.log, err, "load library")
		return
	}

	utils.ResponseSuccess(w, "Library", resp)
}
