// Command import converts Markdown posts from another static site generator
// (front matter with title, publishDate, draft, tags and description) into
// blog content files.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"folio/internal/models"
	"folio/internal/repository"

	"github.com/gosimple/slug"
	"gopkg.in/yaml.v3"
)

// sourceFrontMatter is the header of an imported file.
type sourceFrontMatter struct {
	Title       string      `yaml:"title"`
	Description string      `yaml:"description"`
	PublishDate interface{} `yaml:"publishDate"` // string or timestamp
	UpdatedDate interface{} `yaml:"updatedDate"`
	Draft       bool        `yaml:"draft"`
	Tags        []string    `yaml:"tags"`
	Featured    bool        `yaml:"featured"`
}

var frontMatterRegex = regexp.MustCompile(`(?s)^---\r?\n(.*?)\r?\n---\r?\n`)

func main() {
	src := flag.String("src", "", "directory of markdown files to import")
	dst := flag.String("dst", repository.DefaultContentDir, "blog content directory to write to")
	drafts := flag.Bool("drafts", false, "import drafts too")
	overwrite := flag.Bool("overwrite", false, "replace existing content files")
	flag.Parse()

	if *src == "" {
		flag.Usage()
		os.Exit(2)
	}
	if err := os.MkdirAll(*dst, 0o755); err != nil {
		log.Fatalf("创建目录失败: %v", err)
	}

	imported, skipped := 0, 0
	err := filepath.WalkDir(*src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !(strings.HasSuffix(d.Name(), ".md") || strings.HasSuffix(d.Name(), ".mdx")) {
			return nil
		}

		post, draft, err := convert(path)
		if err != nil {
			log.Printf("跳过 %s: %v", path, err)
			skipped++
			return nil
		}
		if draft && !*drafts {
			log.Printf("跳过草稿 %s", path)
			skipped++
			return nil
		}

		// Untitled posts are named after their file.
		id := slug.Make(post.Title)
		if id == "" {
			id = slug.Make(strings.TrimSuffix(d.Name(), filepath.Ext(d.Name())))
		}
		out := filepath.Join(*dst, id+repository.DefaultExtension)
		if _, err := os.Stat(out); err == nil && !*overwrite {
			log.Printf("跳过 %s: %s 已存在", path, out)
			skipped++
			return nil
		}

		data, err := repository.MarshalPost(post)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return err
		}
		imported++
		return nil
	})
	if err != nil {
		log.Fatalf("导入失败: %v", err)
	}

	fmt.Printf("Imported %d posts, skipped %d.\n", imported, skipped)
}

// convert reads one source file. The returned bool reports a draft.
func convert(path string) (*models.Post, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false, err
	}
	content := string(data)

	matches := frontMatterRegex.FindStringSubmatch(content)
	if len(matches) < 2 {
		return nil, false, errors.New("no front matter")
	}

	var fm sourceFrontMatter
	if err := yaml.Unmarshal([]byte(matches[1]), &fm); err != nil {
		return nil, false, fmt.Errorf("unmarshal front matter: %w", err)
	}

	publishedAt, ok := toTime(fm.PublishDate)
	if !ok {
		log.Printf("Warning: %s has no usable publishDate, using current time", path)
		publishedAt = time.Now().UTC().Truncate(time.Second)
	}

	post := &models.Post{
		PostMeta: models.PostMeta{
			Title:       fm.Title,
			Excerpt:     fm.Description,
			PublishedAt: publishedAt,
			Tags:        fm.Tags,
			Featured:    fm.Featured,
		},
		Content: strings.TrimSpace(content[len(matches[0]):]),
	}
	if updated, ok := toTime(fm.UpdatedDate); ok {
		post.UpdatedAt = &updated
	}
	return post, fm.Draft, nil
}

func toTime(v interface{}) (time.Time, bool) {
	switch d := v.(type) {
	case time.Time:
		return d, true
	case string:
		for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
			if t, err := time.Parse(layout, strings.TrimSpace(d)); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}
