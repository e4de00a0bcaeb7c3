package entity

import "github.com/google/uuid"

type Story struct {
	BaseSimple
	Title         string     `db:"title"`
	Description   *string    `db:"description"`
	WriterID      *uuid.UUID `db:"writer_id"`
	Genre         *string    `db:"genre"`
	AudioPath     string     `db:"audio_path"`
	ThumbnailPath *string    `db:"thumbnail_path"`
	IsSeries      bool       `db:"is_series"`

	// WriterName is filled by queries joining writers; nil when the
	// story has no writer or the writer was deleted.
	WriterName *string `db:"writer_name"`
}
