package repository

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"folio/internal/models"

	"github.com/gosimple/slug"
)

const (
	DefaultContentDir     = "content/blog"
	DefaultExtension      = ".mdx"
	DefaultWordsPerMinute = 200
	DefaultTitle          = "Untitled"
	DefaultAuthorName     = "SHAH MD. JALAL UDDIN"
	DefaultAuthorEmail    = "Shahjalal2313@gmail.com"
)

var (
	ErrPostNotFound     = errors.New("post not found")
	ErrMalformedContent = errors.New("malformed content file")
	ErrInvalidSlug      = errors.New("file name is not a valid slug")
)

// PostRepositoryConfig holds everything the repository would otherwise
// hardcode. Zero fields are filled from the Default* constants.
type PostRepositoryConfig struct {
	Dir            string
	Extension      string
	WordsPerMinute int
	DefaultAuthor  models.Author
	Now            func() time.Time
}

func DefaultPostRepositoryConfig() PostRepositoryConfig {
	return PostRepositoryConfig{
		Dir:            DefaultContentDir,
		Extension:      DefaultExtension,
		WordsPerMinute: DefaultWordsPerMinute,
		DefaultAuthor:  models.Author{Name: DefaultAuthorName, Email: DefaultAuthorEmail},
		Now:            time.Now,
	}
}

// PostRepository reads posts straight from a directory of content files.
// Nothing is cached: every call goes back to disk, so edits show up on the
// next request and concurrent callers share no state.
type PostRepository struct {
	cfg PostRepositoryConfig
}

func NewPostRepository(cfg PostRepositoryConfig) *PostRepository {
	def := DefaultPostRepositoryConfig()
	if cfg.Dir == "" {
		cfg.Dir = def.Dir
	}
	if cfg.Extension == "" {
		cfg.Extension = def.Extension
	}
	if !strings.HasPrefix(cfg.Extension, ".") {
		cfg.Extension = "." + cfg.Extension
	}
	if cfg.WordsPerMinute <= 0 {
		cfg.WordsPerMinute = def.WordsPerMinute
	}
	if cfg.DefaultAuthor.Name == "" {
		cfg.DefaultAuthor.Name = def.DefaultAuthor.Name
	}
	if cfg.DefaultAuthor.Email == "" {
		cfg.DefaultAuthor.Email = def.DefaultAuthor.Email
	}
	if cfg.Now == nil {
		cfg.Now = def.Now
	}
	return &PostRepository{cfg: cfg}
}

// Dir returns the directory the repository reads from.
func (r *PostRepository) Dir() string {
	return r.cfg.Dir
}

// ListSlugs returns the identifiers of every content file, sorted. A missing
// directory is not an error: the blog simply has no posts.
func (r *PostRepository) ListSlugs() []string {
	slugs, invalid := r.scan()
	for _, name := range invalid {
		log.Printf("跳过文件 %s: 文件名不是合法的 slug", name)
	}
	return slugs
}

// scan lists the content files in the directory, splitting them into valid
// slugs and the file names that cannot be served.
func (r *PostRepository) scan() (slugs, invalid []string) {
	entries, err := os.ReadDir(r.cfg.Dir)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("无法读取内容目录 %s: %v", r.cfg.Dir, err)
		}
		return []string{}, nil
	}

	slugs = make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, r.cfg.Extension) {
			continue
		}
		id := strings.TrimSuffix(name, r.cfg.Extension)
		if !slug.IsSlug(id) {
			invalid = append(invalid, name)
			continue
		}
		slugs = append(slugs, id)
	}
	return slugs, invalid
}

// Load reads one post and reports exactly what happened. Callers that only
// care about "show it or 404" use FindBySlug instead.
func (r *PostRepository) Load(id string) LoadResult {
	res := LoadResult{Slug: id}
	if !slug.IsSlug(id) {
		res.Status = StatusNotFound
		res.Err = fmt.Errorf("%q: %w", id, ErrPostNotFound)
		return res
	}

	path := filepath.Join(r.cfg.Dir, id+r.cfg.Extension)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			res.Status = StatusNotFound
			res.Err = fmt.Errorf("%q: %w", id, ErrPostNotFound)
			return res
		}
		res.Status = StatusMalformed
		res.Err = fmt.Errorf("%q: %w: %v", id, ErrMalformedContent, err)
		return res
	}

	post, err := r.parsePost(id, data)
	if err != nil {
		res.Status = StatusMalformed
		res.Err = fmt.Errorf("%q: %w: %v", id, ErrMalformedContent, err)
		return res
	}

	res.Status = StatusFound
	res.Post = post
	return res
}

// FindBySlug returns the post, or false when it does not exist or cannot be
// parsed. Broken files are logged, never surfaced.
func (r *PostRepository) FindBySlug(id string) (*models.Post, bool) {
	res := r.Load(id)
	if res.Status == StatusMalformed {
		log.Printf("读取文章失败: %v", res.Err)
	}
	if res.Status != StatusFound {
		return nil, false
	}
	return res.Post, true
}

// FindAll returns metadata of every loadable post, newest first.
func (r *PostRepository) FindAll() []models.PostMeta {
	slugs := r.ListSlugs()
	metas := make([]models.PostMeta, 0, len(slugs))
	for _, id := range slugs {
		post, ok := r.FindBySlug(id)
		if !ok {
			continue
		}
		metas = append(metas, post.PostMeta)
	}

	sort.SliceStable(metas, func(i, j int) bool {
		if !metas[i].PublishedAt.Equal(metas[j].PublishedAt) {
			return metas[i].PublishedAt.After(metas[j].PublishedAt)
		}
		return metas[i].Slug < metas[j].Slug
	})
	return metas
}

func (r *PostRepository) FindFeatured() []models.PostMeta {
	return filterMetas(r.FindAll(), func(m models.PostMeta) bool { return m.Featured })
}

func (r *PostRepository) FindByTag(tag string) []models.PostMeta {
	return filterMetas(r.FindAll(), func(m models.PostMeta) bool { return m.HasTag(tag) })
}

// AllTags returns every distinct tag, sorted. Tags are kept exactly as
// written; only FindByTag ignores case.
func (r *PostRepository) AllTags() []string {
	seen := make(map[string]bool)
	tags := []string{}
	for _, m := range r.FindAll() {
		for _, t := range m.Tags {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}
	sort.Strings(tags)
	return tags
}

// Audit loads every content file and returns one result per file, sorted by
// name. Files skipped because of their name are included as StatusSkipped so
// the author can see why they never show up.
func (r *PostRepository) Audit() []LoadResult {
	slugs, invalid := r.scan()
	results := make([]LoadResult, 0, len(slugs)+len(invalid))
	for _, id := range slugs {
		results = append(results, r.Load(id))
	}
	for _, name := range invalid {
		results = append(results, LoadResult{
			Slug:   strings.TrimSuffix(name, r.cfg.Extension),
			Status: StatusSkipped,
			Err:    fmt.Errorf("%q: %w", name, ErrInvalidSlug),
		})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Slug < results[j].Slug
	})
	return results
}

func filterMetas(metas []models.PostMeta, keep func(models.PostMeta) bool) []models.PostMeta {
	out := make([]models.PostMeta, 0, len(metas))
	for _, m := range metas {
		if keep(m) {
			out = append(out, m)
		}
	}
	return out
}
