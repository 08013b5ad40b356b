package repository

import (
	"bytes"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"folio/internal/models"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"
)

// frontMatter is the header of a content file. Dates are interface{} so
// both YAML timestamps and quoted strings decode.
type frontMatter struct {
	Title       string         `yaml:"title" toml:"title" json:"title"`
	Excerpt     string         `yaml:"excerpt" toml:"excerpt" json:"excerpt"`
	PublishedAt interface{}    `yaml:"publishedAt" toml:"publishedAt" json:"publishedAt"`
	UpdatedAt   interface{}    `yaml:"updatedAt" toml:"updatedAt" json:"updatedAt"`
	Tags        []string       `yaml:"tags" toml:"tags" json:"tags"`
	Featured    bool           `yaml:"featured" toml:"featured" json:"featured"`
	Author      *models.Author `yaml:"author" toml:"author" json:"author"`
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parsePost turns the bytes of one content file into a Post. Only a broken
// header is an error; missing fields fall back to the repository defaults.
func (r *PostRepository) parsePost(slug string, data []byte) (*models.Post, error) {
	var fm frontMatter
	body, err := frontmatter.Parse(bytes.NewReader(data), &fm)
	if err != nil {
		return nil, fmt.Errorf("parse front matter: %w", err)
	}
	content := string(body)

	post := &models.Post{
		PostMeta: models.PostMeta{
			Slug:        slug,
			Title:       fm.Title,
			Excerpt:     fm.Excerpt,
			Tags:        fm.Tags,
			Featured:    fm.Featured,
			ReadingTime: ReadingTime(content, r.cfg.WordsPerMinute),
			Author:      r.cfg.DefaultAuthor,
		},
		Content: content,
	}
	if post.Title == "" {
		post.Title = DefaultTitle
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}
	if fm.Author != nil {
		if fm.Author.Name != "" {
			post.Author.Name = fm.Author.Name
		}
		if fm.Author.Email != "" {
			post.Author.Email = fm.Author.Email
		}
	}

	publishedAt, ok := parseDate(fm.PublishedAt)
	if !ok {
		if fm.PublishedAt != nil {
			log.Printf("post %s: unparseable publishedAt %v, using current time", slug, fm.PublishedAt)
		}
		publishedAt = r.cfg.Now()
	}
	post.PublishedAt = publishedAt

	if updatedAt, ok := parseDate(fm.UpdatedAt); ok {
		post.UpdatedAt = &updatedAt
	}

	return post, nil
}

func parseDate(v interface{}) (time.Time, bool) {
	switch d := v.(type) {
	case time.Time:
		return d, true
	case string:
		d = strings.TrimSpace(d)
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, d); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}

// ReadingTime estimates minutes to read body at wpm words per minute.
// Anything with a body rounds up to at least one minute.
func ReadingTime(body string, wpm int) int {
	if wpm <= 0 {
		wpm = DefaultWordsPerMinute
	}
	words := len(strings.Fields(body))
	minutes := int(math.Ceil(float64(words) / float64(wpm)))
	if minutes < 1 {
		return 1
	}
	return minutes
}

// fileHeader is the front matter written by MarshalPost. Field order is the
// order keys appear in the file.
type fileHeader struct {
	Title       string         `yaml:"title"`
	Excerpt     string         `yaml:"excerpt,omitempty"`
	PublishedAt string         `yaml:"publishedAt"`
	UpdatedAt   string         `yaml:"updatedAt,omitempty"`
	Tags        []string       `yaml:"tags,omitempty,flow"`
	Featured    bool           `yaml:"featured,omitempty"`
	Author      *models.Author `yaml:"author,omitempty"`
}

// MarshalPost renders post as a content file: a YAML header between ---
// lines followed by the body. Author is written only when set.
func MarshalPost(post *models.Post) ([]byte, error) {
	h := fileHeader{
		Title:       post.Title,
		Excerpt:     post.Excerpt,
		PublishedAt: post.PublishedAt.Format(time.RFC3339),
		Tags:        post.Tags,
		Featured:    post.Featured,
	}
	if post.UpdatedAt != nil {
		h.UpdatedAt = post.UpdatedAt.Format(time.RFC3339)
	}
	if post.Author != (models.Author{}) {
		author := post.Author
		h.Author = &author
	}

	header, err := yaml.Marshal(h)
	if err != nil {
		return nil, fmt.Errorf("marshal front matter: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(header)
	buf.WriteString("---\n\n")
	buf.WriteString(strings.TrimLeft(post.Content, "\n"))
	if !strings.HasSuffix(post.Content, "\n") {
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}
