package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"goppo-soppo/internal/dto/request"
	"goppo-soppo/internal/usecase"
	"goppo-soppo/pkg/storage"
	"goppo-soppo/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const maxMultipartMemory = 32 << 20

type PlaylistHandler struct {
	service usecase.PlaylistService
	files   *storage.FileStore
	log     *zap.Logger
}

func NewPlaylistHandler(service usecase.PlaylistService, files *storage.FileStore, log *zap.Logger) *PlaylistHandler {
	return &PlaylistHandler{
		service: service,
		files:   files,
		log:     log,
	}
}

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

// Create handles POST /api/playlists. The body is either JSON or a
// multipart form with an optional cover image.
func (h *PlaylistHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePlaylistRequest

	if isMultipart(r) {
		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			utils.ResponseBadRequest(w, "Invalid multipart form", nil)
			return
		}
		req.Title = r.FormValue("title")
		req.Description = r.FormValue("description")
		req.Privacy = r.FormValue("privacy")

		if file, header, err := r.FormFile("cover"); err == nil {
			defer file.Close()
			path, err := h.files.SaveImage(file, header, storage.DirPlaylists, "playlist")
			if err != nil {
				utils.ResponseBadRequest(w, err.Error(), nil)
				return
			}
			req.CoverImage = &path
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.ResponseBadRequest(w, "Invalid request body", nil)
			return
		}
	}

	identity, _ := utils.GetIdentityFromContext(r.Context())

	resp, err := h.service.Create(r.Context(), identity, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create playlist")
		return
	}

	utils.ResponseCreated(w, "Playlist created", resp)
}

// List handles GET /api/playlists
func (h *PlaylistHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, _ := utils.GetIdentityFromContext(r.Context())

	resp, err := h.service.ListMine(r.Context(), identity)
	if err != nil {
		handleServiceError(w, h.log, err, "list playlists")
		return
	}

	utils.ResponseSuccess(w, "Playlists", resp)
}

// Detail handles GET /api/playlists/{id}
func (h *PlaylistHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid playlist ID", nil)
		return
	}

	identity, _ := utils.GetIdentityFromContext(r.Context())

	resp, err := h.service.GetDetail(r.Context(), identity, id)
	if err != nil {
		handleServiceError(w, h.log, err, "load playlist")
		return
	}

	utils.ResponseSuccess(w, "Playlist detail", resp)
}

// Update handles PUT /api/playlists/{id}. Absent fields stay
// unchanged, so the multipart branch only sets what the form carried.
func (h *PlaylistHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid playlist ID", nil)
		return
	}

	var req request.UpdatePlaylistRequest

	if isMultipart(r) {
		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			utils.ResponseBadRequest(w, "Invalid multipart form", nil)
			return
		}
		req.Title = formValuePtr(r, "title")
		req.Description = formValuePtr(r, "description")
		req.Privacy = formValuePtr(r, "privacy")

		if file, header, err := r.FormFile("cover"); err == nil {
			defer file.Close()
			path, err := h.files.SaveImage(file, header, storage.DirPlaylists, "playlist")
			if err != nil {
				utils.ResponseBadRequest(w, err.Error(), nil)
				return
			}
			req.CoverImage = &path
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.ResponseBadRequest(w, "Invalid request body", nil)
			return
		}
	}

	identity, _ := utils.GetIdentityFromContext(r.Context())

	resp, err := h.service.Update(r.Context(), identity, id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update playlist")
		return
	}

	utils.ResponseSuccess(w, "Playlist updated", resp)
}

// Delete handles DELETE /api/playlists/{id}
func (h *PlaylistHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid playlist ID", nil)
		return
	}

	identity, _ := utils.GetIdentityFromContext(r.Context())

	if err := h.service.Delete(r.Context(), identity, id); err != nil {
		handleServiceError(w, h.log, err, "delete playlist")
		return
	}

	utils.ResponseSuccess(w, "Playlist deleted", nil)
}

// AddItem handles POST /api/playlists/{id}/items
func (h *PlaylistHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid playlist ID", nil)
		return
	}

	var req request.AddPlaylistItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	identity, _ := utils.GetIdentityFromContext(r.Context())

	if err := h.service.AddItem(r.Context(), identity, id, &req); err != nil {
		handleServiceError(w, h.log, err, "add playlist item")
		return
	}

	utils.ResponseCreated(w, "Story added to playlist", nil)
}

// RemoveItem handles DELETE /api/playlists/{id}/items/{storyId}
func (h *PlaylistHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid playlist ID", nil)
		return
	}
	storyID, err := utils.ParseUUID(chi.URLParam(r, "storyId"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid story ID", nil)
		return
	}

	identity, _ := utils.GetIdentityFromContext(r.Context())

	if err := h.service.RemoveItem(r.Context(), identity, id, storyID); err != nil {
		handleServiceError(w, h.log, err, "remove playlist item")
		return
	}

	utils.ResponseSuccess(w, "Story removed from playlist", nil)
}

// formValuePtr returns the form value as a pointer, nil when the field
// was not part of the form at all.
func formValuePtr(r *http.Request, key string) *string {
	if r.MultipartForm == nil {
		return nil
	}
	values, ok := r.MultipartForm.Value[key]
	if !ok || len(values) == 0 {
		return nil
	}
	return &values[0]
}
