package models

import (
	"encoding/json"
	"time"
)

// ResearchUpdate represents a published research article.
type ResearchUpdate struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Summary       string    `json:"summary"`
	Content       string    `json:"content"`
	Author        string    `json:"author"`
	Category      string    `json:"category"` // Crop Science, Technology, Sustainability, Policy, Other
	ImageURL      string    `json:"imageUrl,omitempty"`
	PublishedDate time.Time `json:"publishedDate"`
	IsPublished   bool      `json:"isPublished"`
	ReadTime      int       `json:"readTime"` // minutes
	Views         int       `json:"views"`
	Likes         int       `json:"likes"`

	// JSON string field for DB storage
	TagsJSON string `json:"-"`

	Tags []string `json:"tags,omitempty"`
}

// PrepareForSave marshals the tag list into its JSON string for DB storage.
func (r *ResearchUpdate) PrepareForSave() {
	tagsBytes, _ := json.Marshal(r.Tags)
	r.TagsJSON = string(tagsBytes)
}

// PrepareForAPI unmarshals the stored JSON string into the tag list.
func (r *ResearchUpdate) PrepareForAPI() {
	if r.TagsJSON != "" {
		json.Unmarshal([]byte(r.TagsJSON), &r.Tags)
	}
}
