package request

type ToggleLikeRequest struct {
	StoryID string `json:"storyId" validate:"required,uuid"`
}
