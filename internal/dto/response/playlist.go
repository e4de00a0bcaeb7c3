package response

import (
	"time"

	"goppo-soppo/internal/data/entity"
)

type PlaylistResponse struct {
	ID          string                 `json:"id"`
	OwnerID     *string                `json:"user_id,omitempty"`
	Title       string                 `json:"title"`
	Description *string                `json:"description,omitempty"`
	CoverImage  *string                `json:"cover_image,omitempty"`
	Privacy     entity.PlaylistPrivacy `json:"privacy"`
	IsGlobal    bool                   `json:"is_global"`
	ItemCount   int64                  `json:"item_count"`
	CreatedAt   time.Time              `json:"created_at"`
}

// PlaylistDetailResponse is the full aggregation: playlist, owner name,
// ordered items, and the viewer-relative isOwner flag.
type PlaylistDetailResponse struct {
	PlaylistResponse
	OwnerName *string                 `json:"owner_name,omitempty"`
	Items     []PlaylistStoryResponse `json:"items"`
	IsOwner   bool                    `json:"isOwner"`
}

type PlaylistStoryResponse struct {
	StoryResponse
	AddedAt time.Time `json:"added_at"`
}

// Helper converters

func PlaylistToResponse(playlist *entity.Playlist) PlaylistResponse {
	resp := PlaylistResponse{
		ID:          playlist.ID.String(),
		Title:       playlist.Title,
		Description: playlist.Description,
		CoverImage:  playlist.CoverImage,
		Privacy:     playlist.Privacy,
		IsGlobal:    playlist.IsGlobal,
		ItemCount:   playlist.ItemCount,
		CreatedAt:   playlist.CreatedAt,
	}

	if playlist.OwnerID != nil {
		id := playlist.OwnerID.String()
		resp.OwnerID = &id
	}

	return resp
}

func PlaylistsToResponse(playlists []*entity.Playlist) []PlaylistResponse {
	responses := make([]PlaylistResponse, len(playlists))
	for i, playlist := range playlists {
		responses[i] = PlaylistToResponse(playlist)
	}
	return responses
}

func PlaylistToDetailResponse(playlist *entity.Playlist, items []*entity.PlaylistStory, isOwner bool) *PlaylistDetailResponse {
	detail := &PlaylistDetailResponse{
		PlaylistResponse: PlaylistToResponse(playlist),
		OwnerName:        playlist.OwnerName,
		Items:            make([]PlaylistStoryResponse, len(items)),
		IsOwner:          isOwner,
	}

	for i, item := range items {
		detail.Items[i] = PlaylistStoryResponse{
			StoryResponse: StoryToResponse(&item.Story),
			AddedAt:       item.AddedAt,
		}
	}

	return detail
}
