package response

import (
	"time"

	"goppo-soppo/internal/data/entity"
)

type StoryResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   *string   `json:"description,omitempty"`
	WriterID      *string   `json:"writer_id,omitempty"`
	WriterName    *string   `json:"writer_name,omitempty"`
	Genre         *string   `json:"genre,omitempty"`
	AudioPath     string    `json:"audio_path"`
	ThumbnailPath *string   `json:"thumbnail_path,omitempty"`
	IsSeries      bool      `json:"is_series"`
	CreatedAt     time.Time `json:"created_at"`
}

// StoryTitleResponse is the slim shape for the admin story picker.
type StoryTitleResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type StoryMetaResponse struct {
	Count   int64 `json:"count"`
	IsLiked bool  `json:"isLiked"`
}

type LikeResponse struct {
	Liked bool  `json:"liked"`
	Count int64 `json:"count"`
}

type LibraryResponse struct {
	Liked []StoryResponse `json:"liked"`
}

// Helper converters

func StoryToResponse(story *entity.Story) StoryResponse {
	resp := StoryResponse{
		ID:            story.ID.String(),
		Title:         story.Title,
		Description:   story.Description,
		WriterName:    story.WriterName,
		Genre:         story.Genre,
		AudioPath:     story.AudioPath,
		ThumbnailPath: story.ThumbnailPath,
		IsSeries:      story.IsSeries,
		CreatedAt:     story.CreatedAt,
	}

	if story.WriterID != nil {
		id := story.WriterID.String()
		resp.WriterID = &id
	}

	return resp
}

func StoriesToResponse(stories []*entity.Story) []StoryResponse {
	responses := make([]StoryResponse, len(stories))
	for i, story := range stories {
		responses[i] = StoryToResponse(story)
	}
	return responses
}
