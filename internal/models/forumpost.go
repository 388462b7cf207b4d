package models

import (
	"encoding/json"
	"time"
)

// PostAuthor is the subset of User attached to forum posts.
type PostAuthor struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// ForumPost represents a community forum post.
type ForumPost struct {
	ID            string      `json:"id"`
	UserID        string      `json:"userID"`
	Title         string      `json:"title"`
	Content       string      `json:"content"`
	Upvotes       int         `json:"upvotes"`
	ExpertReplies bool        `json:"expertReplies"`
	CreatedAt     time.Time   `json:"createdAt"`
	Author        *PostAuthor `json:"author,omitempty"`

	// JSON string field for DB storage
	TagsJSON string `json:"-"`

	Tags []string `json:"tags,omitempty"`
}

// PrepareForSave marshals the tag list into its JSON string for DB storage.
func (p *ForumPost) PrepareForSave() {
	tagsBytes, _ := json.Marshal(p.Tags)
	p.TagsJSON = string(tagsBytes)
}

// PrepareForAPI unmarshals the stored JSON string into the tag list.
func (p *ForumPost) PrepareForAPI() {
	if p.TagsJSON != "" {
		json.Unmarshal([]byte(p.TagsJSON), &p.Tags)
	}
}
