package models

import (
	"html/template"
	"strings"
	"time"
)

// Author identifies who wrote a post.
type Author struct {
	Name  string `json:"name" yaml:"name" toml:"name"`
	Email string `json:"email" yaml:"email" toml:"email"`
}

// PostMeta is everything about a post except its body. Listings only ever
// carry PostMeta so index pages stay small.
type PostMeta struct {
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Excerpt     string     `json:"excerpt"`
	PublishedAt time.Time  `json:"published_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
	Tags        []string   `json:"tags"`
	Featured    bool       `json:"featured"`
	ReadingTime int        `json:"reading_time"`
	Author      Author     `json:"author"`
}

// Post is a content file as loaded from disk. Content is the raw body.
type Post struct {
	PostMeta
	Content string `json:"content"`
}

// RenderedPost is a view model for displaying a post with rendered HTML content.
type RenderedPost struct {
	PostMeta
	Content     template.HTML `json:"content"`
	Description string        `json:"description"`
}

// HasTag reports whether the post carries tag, ignoring case.
func (m PostMeta) HasTag(tag string) bool {
	for _, t := range m.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}
