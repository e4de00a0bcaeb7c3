package adaptor

import (
	"errors"
	"net/http"
	"strings"

	"goppo-soppo/internal/usecase"
	"goppo-soppo/pkg/storage"
	"goppo-soppo/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	Playlist *PlaylistHandler
	Public   *PublicHandler
	Admin    *AdminHandler
	User     *UserHandler
}

func NewHandler(service *usecase.Service, files *storage.FileStore, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, config, log),
		Playlist: NewPlaylistHandler(service.Playlist, files, log),
		Public:   NewPublicHandler(service.Public, service.Library, log),
		Admin:    NewAdminHandler(service.Admin, files, log),
		User:     NewUserHandler(service.Library, log),
	}
}

// handleServiceError maps service errors onto HTTP statuses by their
// message. Everything unrecognized is a 500 with a generic body.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var unverified *usecase.UnverifiedAccountError
	if errors.As(err, &unverified) {
		log.Warn(operation+" blocked - unverified account", zap.String("user_id", unverified.UserID.String()))
		utils.ResponseJSON(w, http.StatusForbidden, false, unverified.Error(),
			map[string]string{"userId": unverified.UserID.String()}, nil)
		return
	}

	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "validation failed"):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "OTP"):
		log.Warn(operation+" failed - OTP rejected", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "already registered"),
		strings.Contains(errMsg, "already in playlist"):
		log.Warn(operation+" failed - already exists", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "invalid credentials"),
		strings.Contains(errMsg, "unauthorized"):
		log.Warn(operation+" failed - unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, errMsg)

	case strings.Contains(errMsg, "admin access required"),
		strings.Contains(errMsg, "private"),
		strings.Contains(errMsg, "not verified"):
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, errMsg)

	case strings.Contains(errMsg, "not found"):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
