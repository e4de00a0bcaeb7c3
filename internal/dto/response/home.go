package response

// HomeResponse is the landing feed: hero story, trending picks, the
// detective shelf, featured writers, and global playlists.
type HomeResponse struct {
	Hero      *StoryResponse     `json:"hero"`
	Trending  []StoryResponse    `json:"trending"`
	Detective []StoryResponse    `json:"detective"`
	Writers   []WriterResponse   `json:"writers"`
	Playlists []PlaylistResponse `json:"playlists"`
}

type SearchResponse struct {
	Stories []StoryResponse  `json:"stories"`
	Writers []WriterResponse `json:"writers"`
}
