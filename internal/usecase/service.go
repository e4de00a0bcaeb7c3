package usecase

import (
	"goppo-soppo/internal/data/repository"
	"goppo-soppo/pkg/mailer"
	"goppo-soppo/pkg/session"
	"goppo-soppo/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	Playlist PlaylistService
	Library  LibraryService
	Public   PublicService
	Admin    AdminService
}

func NewService(
	repo *repository.Repository,
	sessions session.Store,
	mail mailer.Mailer,
	files FileRemover,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:     NewAuthService(repo, sessions, mail, config, log),
		Playlist: NewPlaylistService(repo, files, log),
		Library:  NewLibraryService(repo, log),
		Public:   NewPublicService(repo, log),
		Admin:    NewAdminService(repo, log),
	}
}
