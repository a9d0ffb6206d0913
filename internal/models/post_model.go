package models

import "time"

// Post is the canonical decoded shape of a document in the posts collection.
// Documents written by older clients may omit MediaVersions, Tags and IsActive;
// the repository fills the documented defaults when decoding.
type Post struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Summary       string         `json:"summary"`
	Content       string         `json:"content"`
	Category      string         `json:"category"`
	Image         string         `json:"image,omitempty"`
	MediaVersions []MediaVersion `json:"mediaVersions,omitempty"`
	Date          time.Time      `json:"date"`
	IsFeatured    bool           `json:"isFeatured"`
	IsActive      bool           `json:"isActive"`
	Tags          []string       `json:"tags,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

// MediaVersion is one alternate media+text rendering of a post, shown as a tab.
// Index 0 is conventionally the prompt tab; later versions are lettered A, B, C.
type MediaVersion struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	URL      string `json:"url,omitempty"`
	Type     string `json:"type,omitempty"`
	Content  string `json:"content,omitempty"`
	IsPrompt bool   `json:"isPrompt,omitempty"`
}

const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

const (
	CategoryVideo        = "Video"
	CategoryMusic        = "Music"
	CategoryImage        = "Image"
	CategoryDeepResearch = "Deep Research"
	CategoryReasoning    = "Reasoning"
)

// Categories is the fixed set accepted by the admin create/update path.
var Categories = []string{
	CategoryVideo,
	CategoryMusic,
	CategoryImage,
	CategoryDeepResearch,
	CategoryReasoning,
}

func IsValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}
