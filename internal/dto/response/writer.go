package response

import (
	"time"

	"goppo-soppo/internal/data/entity"
)

type WriterResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Bio       *string   `json:"bio,omitempty"`
	ImagePath *string   `json:"image_path,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type WriterDetailResponse struct {
	Writer  WriterResponse  `json:"writer"`
	Stories []StoryResponse `json:"stories"`
}

// Helper converters

func WriterToResponse(writer *entity.Writer) WriterResponse {
	return WriterResponse{
		ID:        writer.ID.String(),
		Name:      writer.Name,
		Bio:       writer.Bio,
		ImagePath: writer.ImagePath,
		CreatedAt: writer.CreatedAt,
	}
}

func WritersToResponse(writers []*entity.Writer) []WriterResponse {
	responses := make([]WriterResponse, len(writers))
	for i, writer := range writers {
		responses[i] = WriterToResponse(writer)
	}
	return responses
}
