package repository

import (
	"goppo-soppo/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User         UserRepository
	OTP          OTPRepository
	Writer       WriterRepository
	Story        StoryRepository
	Playlist     PlaylistRepository
	PlaylistItem PlaylistItemRepository
	Like         LikeRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:         NewUserRepository(db, log),
		OTP:          NewOTPRepository(db, log),
		Writer:       NewWriterRepository(db, log),
		Story:        NewStoryRepository(db, log),
		Playlist:     NewPlaylistRepository(db, log),
		PlaylistItem: NewPlaylistItemRepository(db, log),
		Like:         NewLikeRepository(db, log),
	}
}
