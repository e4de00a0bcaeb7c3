package request

// Admin ingestion endpoints are multipart forms; handlers store the
// uploaded files first and fill in the resulting web paths.

type AddWriterRequest struct {
	Name      string  `json:"name" validate:"required,min=1,max=255"`
	Bio       string  `json:"bio,omitempty"`
	ImagePath *string `json:"-"`
}

type AddStoryRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=255"`
	Description string `json:"description,omitempty"`
	WriterID    string `json:"writer_id" validate:"required,uuid"`
	Genre       string `json:"genre,omitempty" validate:"omitempty,max=255"`
	IsSeries    bool   `json:"is_series,omitempty"`
	// AudioPath is required: a story without audio is rejected before
	// any insert.
	AudioPath     string  `json:"-" validate:"required"`
	ThumbnailPath *string `json:"-"`
}

type CreateGlobalPlaylistRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=255"`
	Description string `json:"description,omitempty"`
	IsGlobal    bool   `json:"is_global,omitempty"`
	// StoryIDs is the optional initial batch of stories.
	StoryIDs      []string `json:"story_ids,omitempty" validate:"omitempty,dive,uuid"`
	ThumbnailPath *string  `json:"-"`
}
