package adaptor

import (
	"net/http"
	"strings"

	"goppo-soppo/internal/dto/request"
	"goppo-soppo/internal/usecase"
	"goppo-soppo/pkg/storage"
	"goppo-soppo/pkg/utils"

	"go.uber.org/zap"
)

type AdminHandler struct {
	service usecase.AdminService
	files   *storage.FileStore
	log     *zap.Logger
}

func NewAdminHandler(service usecase.AdminService, files *storage.FileStore, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		files:   files,
		log:     log,
	}
}

// AddWriter handles POST /api/admin/writers (multipart: name, bio,
// optional image)
func (h *AdminHandler) AddWriter(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart form", nil)
		return
	}

	req := request.AddWriterRequest{
		Name: r.FormValue("name"),
		Bio:  r.FormValue("bio"),
	}

	if file, header, err := r.FormFile("image"); err == nil {
		defer file.Close()
		path, err := h.files.SaveImage(file, header, storage.DirWriters, "writer")
		if err != nil {
			utils.ResponseBadRequest(w, err.Error(), nil)
			return
		}
		req.ImagePath = &path
	}

	identity, _ := utils.GetIdentityFromContext(r.Context())

	resp, err := h.service.AddWriter(r.Context(), identity, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "add writer")
		return
	}

	utils.ResponseCreated(w, "Writer added", resp)
}

// ListWriters handles GET /api/admin/writers
func (h *AdminHandler) ListWriters(w http.ResponseWriter, r *http.Request) {
	identity, _ := utils.GetIdentityFromContext(r.Context())

	resp, err := h.service.ListWriters(r.Context(), identity)
	if err != nil {
		handleServiceError(w, h.log, err, "list writers")
		return
	}

	utils.ResponseSuccess(w, "Writers", resp)
}

// AddStory handles POST /api/admin/stories (multipart: title,
// description, writer_id, genre, is_series, audio file required,
// optional thumbnail)
func (h *AdminHandler) AddStory(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart form", nil)
		return
	}

	req := request.AddStoryRequest{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		WriterID:    r.FormValue("writer_id"),
		Genre:       r.FormValue("genre"),
		IsSeries:    r.FormValue("is_series") == "true",
	}

	file, header, err := r.FormFile("audio")
	if err != nil {
		utils.ResponseBadRequest(w, "Audio file is required", nil)
		return
	}
	defer file.Close()
	audioPath, err := h.files.SaveAudio(file, header)
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}
	req.AudioPath = audioPath

	if thumb, thumbHeader, err := r.FormFile("thumbnail"); err == nil {
		defer thumb.Close()
		path, err := h.files.SaveImage(thumb, thumbHeader, storage.DirThumbnails, "story")
		if err != nil {
			utils.ResponseBadRequest(w, err.Error(), nil)
			return
		}
		req.ThumbnailPath = &path
	}

	identity, _ := utils.GetIdentityFromContext(r.Context())

	resp, err := h.service.AddStory(r.Context(), identity, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "add story")
		return
	}

	utils.ResponseCreated(w, "Story added", resp)
}

// ListStories handles GET /api/admin/stories
func (h *AdminHandler) ListStories(w http.ResponseWriter, r *http.Request) {
	identity, _ := utils.GetIdentityFromContext(r.Context())

	resp, err := h.service.ListStories(r.Context(), identity)
	if err != nil {
		handleServiceError(w, h.log, err, "list stories")
		return
	}

	utils.ResponseSuccess(w, "Stories", resp)
}

// CreatePlaylist handles POST /api/admin/playlists (multipart: title,
// description, story_ids, optional thumbnail)
func (h *AdminHandler) CreatePlaylist(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart form", nil)
		return
	}

	req := request.CreateGlobalPlaylistRequest{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		IsGlobal:    true,
		StoryIDs:    formStoryIDs(r),
	}

	if file, header, err := r.FormFile("thumbnail"); err == nil {
		defer file.Close()
		path, err := h.files.SaveImage(file, header, storage.DirPlaylists, "playlist")
		if err != nil {
			utils.ResponseBadRequest(w, err.Error(), nil)
			return
		}
		req.ThumbnailPath = &path
	}

	identity, _ := utils.GetIdentityFromContext(r.Context())

	resp, err := h.service.CreateGlobalPlaylist(r.Context(), identity, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create global playlist")
		return
	}

	utils.ResponseCreated(w, "Playlist created", resp)
}

// ListPlaylists handles GET /api/admin/playlists
func (h *AdminHandler) ListPlaylists(w http.ResponseWriter, r *http.Request) {
	identity, _ := utils.GetIdentityFromContext(r.Context())

	resp, err := h.service.ListPlaylists(r.Context(), identity)
	if err != nil {
		handleServiceError(w, h.log, err, "list playlists")
		return
	}

	utils.ResponseSuccess(w, "Playlists", resp)
}

// formStoryIDs accepts either repeated story_ids fields or one
// comma-separated value.
func formStoryIDs(r *http.Request) []string {
	if r.MultipartForm == nil {
		return nil
	}
	values := r.MultipartForm.Value["story_ids"]
	var ids []string
	for _, value := range values {
		for _, id := range strings.Split(value, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
	}
	return ids
}
