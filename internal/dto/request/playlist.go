package request

// Playlist create/update arrive as multipart forms (optional cover
// image); handlers coerce the fields into these typed requests before
// anything touches business logic.

type CreatePlaylistRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=255"`
	Description string `json:"description,omitempty"`
	Privacy     string `json:"privacy,omitempty" validate:"omitempty,oneof=public private"`
	// CoverImage is the stored web path, set by the handler after a
	// successful upload.
	CoverImage *string `json:"-"`
}

// UpdatePlaylistRequest carries only the fields present in the form;
// nil means "leave unchanged".
type UpdatePlaylistRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description,omitempty"`
	Privacy     *string `json:"privacy,omitempty" validate:"omitempty,oneof=public private"`
	CoverImage  *string `json:"-"`
}

type AddPlaylistItemRequest struct {
	StoryID string `json:"storyId" validate:"required,uuid"`
}
