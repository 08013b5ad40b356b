package repository

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"folio/internal/models"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestRepo(t *testing.T) (*PostRepository, string) {
	t.Helper()
	dir := t.TempDir()
	repo := NewPostRepository(PostRepositoryConfig{
		Dir: dir,
		Now: func() time.Time { return fixedNow },
	})
	return repo, dir
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644)
	assert.NilError(t, err)
}

func post(title, date string, tags []string, featured bool) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("title: " + title + "\n")
	b.WriteString("publishedAt: \"" + date + "\"\n")
	if len(tags) > 0 {
		b.WriteString("tags: [" + strings.Join(tags, ", ") + "]\n")
	}
	if featured {
		b.WriteString("featured: true\n")
	}
	b.WriteString("---\n\nBody of " + title + ".\n")
	return b.String()
}

func slugsOf(metas []models.PostMeta) []string {
	out := make([]string, len(metas))
	for i, m := range metas {
		out[i] = m.Slug
	}
	return out
}

func TestReadingTime(t *testing.T) {
	words := func(n int) string { return strings.Repeat("word ", n) }

	assert.Equal(t, ReadingTime(words(200), 200), 1)
	assert.Equal(t, ReadingTime(words(201), 200), 2)
	assert.Equal(t, ReadingTime(words(400), 200), 2)
	assert.Equal(t, ReadingTime("", 200), 1)
	assert.Equal(t, ReadingTime(words(250), 0), 2)
	assert.Equal(t, ReadingTime(words(100), 50), 2)
}

func TestListSlugsMissingDirectory(t *testing.T) {
	repo := NewPostRepository(PostRepositoryConfig{Dir: filepath.Join(t.TempDir(), "nope")})

	slugs := repo.ListSlugs()
	assert.Assert(t, slugs != nil)
	assert.Assert(t, is.Len(slugs, 0))
	assert.Assert(t, is.Len(repo.FindAll(), 0))
	assert.Assert(t, is.Len(repo.AllTags(), 0))
}

func TestListSlugsFiltersFiles(t *testing.T) {
	repo, dir := newTestRepo(t)
	writeFile(t, dir, "b-post.mdx", post("B", "2024-01-01", nil, false))
	writeFile(t, dir, "a-post.mdx", post("A", "2024-01-01", nil, false))
	writeFile(t, dir, "notes.txt", "not a post")
	writeFile(t, dir, "Bad Name.mdx", post("Bad", "2024-01-01", nil, false))
	assert.NilError(t, os.Mkdir(filepath.Join(dir, "drafts.mdx"), 0o755))

	assert.DeepEqual(t, repo.ListSlugs(), []string{"a-post", "b-post"})
}

func TestNewPostRepositoryNormalisesExtension(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "hello.md", post("Hello", "2024-01-01", nil, false))

	repo := NewPostRepository(PostRepositoryConfig{Dir: dir, Extension: "md"})
	assert.DeepEqual(t, repo.ListSlugs(), []string{"hello"})
}

func TestFindAllOrder(t *testing.T) {
	repo, dir := newTestRepo(t)
	writeFile(t, dir, "old.mdx", post("Old", "2023-01-01", nil, false))
	writeFile(t, dir, "newest-b.mdx", post("New B", "2024-03-01", nil, false))
	writeFile(t, dir, "newest-a.mdx", post("New A", "2024-03-01", nil, false))
	writeFile(t, dir, "middle.mdx", post("Middle", "2024-02-01T09:30:00Z", nil, false))

	assert.DeepEqual(t, slugsOf(repo.FindAll()), []string{"newest-a", "newest-b", "middle", "old"})
}

func TestFindAllSkipsMalformed(t *testing.T) {
	repo, dir := newTestRepo(t)
	writeFile(t, dir, "good.mdx", post("Good", "2024-01-01", nil, false))
	writeFile(t, dir, "broken.mdx", "---\ntitle: [unclosed\n---\n\nbody\n")

	assert.DeepEqual(t, slugsOf(repo.FindAll()), []string{"good"})

	_, ok := repo.FindBySlug("broken")
	assert.Assert(t, !ok)
}

func TestFindBySlugDefaults(t *testing.T) {
	repo, dir := newTestRepo(t)
	writeFile(t, dir, "bare.mdx", "Just a body with five words.")

	p, ok := repo.FindBySlug("bare")
	assert.Assert(t, ok)
	assert.Equal(t, p.Slug, "bare")
	assert.Equal(t, p.Title, DefaultTitle)
	assert.Equal(t, p.Excerpt, "")
	assert.Assert(t, p.Tags != nil)
	assert.Assert(t, is.Len(p.Tags, 0))
	assert.Equal(t, p.Featured, false)
	assert.Equal(t, p.ReadingTime, 1)
	assert.Assert(t, p.PublishedAt.Equal(fixedNow))
	assert.Assert(t, p.UpdatedAt == nil)
	assert.Equal(t, p.Author, models.Author{Name: DefaultAuthorName, Email: DefaultAuthorEmail})
	assert.Equal(t, p.Content, "Just a body with five words.")
}

func TestFindBySlugFullFrontMatter(t *testing.T) {
	repo, dir := newTestRepo(t)
	writeFile(t, dir, "full.mdx", `---
title: Density Functional Theory
excerpt: A short tour.
publishedAt: 2024-01-15
updatedAt: "2024-02-01 08:00:00"
tags:
  - DFT
  - Chemistry
featured: true
author:
  name: Guest Writer
---

# Heading

Body text.
`)

	p, ok := repo.FindBySlug("full")
	assert.Assert(t, ok)
	assert.Equal(t, p.Title, "Density Functional Theory")
	assert.Equal(t, p.Excerpt, "A short tour.")
	assert.Assert(t, p.PublishedAt.Equal(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)))
	assert.Assert(t, p.UpdatedAt != nil)
	assert.Assert(t, p.UpdatedAt.Equal(time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)))
	assert.DeepEqual(t, p.Tags, []string{"DFT", "Chemistry"})
	assert.Assert(t, p.Featured)
	assert.Equal(t, p.Author.Name, "Guest Writer")
	assert.Equal(t, p.Author.Email, DefaultAuthorEmail)
	assert.Assert(t, is.Contains(p.Content, "# Heading"))
	assert.Assert(t, !strings.Contains(p.Content, "title:"))
}

func TestUnparseableDateFallsBackToNow(t *testing.T) {
	repo, dir := newTestRepo(t)
	writeFile(t, dir, "when.mdx", "---\ntitle: When\npublishedAt: \"sometime soon\"\n---\nbody")

	p, ok := repo.FindBySlug("when")
	assert.Assert(t, ok)
	assert.Assert(t, p.PublishedAt.Equal(fixedNow))
}

func TestFindFeatured(t *testing.T) {
	repo, dir := newTestRepo(t)
	writeFile(t, dir, "one.mdx", post("One", "2024-01-01", nil, true))
	writeFile(t, dir, "two.mdx", post("Two", "2024-02-01", nil, false))
	writeFile(t, dir, "three.mdx", post("Three", "2024-03-01", nil, true))

	assert.DeepEqual(t, slugsOf(repo.FindFeatured()), []string{"three", "one"})
}

func TestFindByTagIgnoresCase(t *testing.T) {
	repo, dir := newTestRepo(t)
	writeFile(t, dir, "one.mdx", post("One", "2024-01-01", []string{"Chemistry", "DFT"}, false))
	writeFile(t, dir, "two.mdx", post("Two", "2024-02-01", []string{"chemistry"}, false))
	writeFile(t, dir, "three.mdx", post("Three", "2024-03-01", []string{"Go"}, false))

	assert.DeepEqual(t, slugsOf(repo.FindByTag("CHEMISTRY")), []string{"two", "one"})
	assert.DeepEqual(t, slugsOf(repo.FindByTag("dft")), []string{"one"})
	assert.Assert(t, is.Len(repo.FindByTag("missing"), 0))
}

func TestAllTags(t *testing.T) {
	repo, dir := newTestRepo(t)
	writeFile(t, dir, "one.mdx", post("One", "2024-01-01", []string{"C", "A"}, false))
	writeFile(t, dir, "two.mdx", post("Two", "2024-02-01", []string{"b", "A"}, false))

	assert.DeepEqual(t, repo.AllTags(), []string{"A", "C", "b"})
}

func TestLoadStatuses(t *testing.T) {
	repo, dir := newTestRepo(t)
	writeFile(t, dir, "good.mdx", post("Good", "2024-01-01", nil, false))
	writeFile(t, dir, "broken.mdx", "---\ntitle: [unclosed\n---\nbody")

	res := repo.Load("good")
	assert.Assert(t, res.OK())
	assert.Equal(t, res.Status.String(), "ok")
	assert.NilError(t, res.Err)
	assert.Equal(t, res.Post.Title, "Good")

	res = repo.Load("missing")
	assert.Equal(t, res.Status, StatusNotFound)
	assert.ErrorIs(t, res.Err, ErrPostNotFound)
	assert.Assert(t, res.Post == nil)

	res = repo.Load("../etc/passwd")
	assert.Equal(t, res.Status, StatusNotFound)
	assert.ErrorIs(t, res.Err, ErrPostNotFound)

	res = repo.Load("broken")
	assert.Equal(t, res.Status, StatusMalformed)
	assert.Equal(t, res.Status.String(), "malformed")
	assert.ErrorIs(t, res.Err, ErrMalformedContent)
}

func TestAudit(t *testing.T) {
	repo, dir := newTestRepo(t)
	writeFile(t, dir, "a.mdx", post("A", "2024-01-01", nil, false))
	writeFile(t, dir, "b.mdx", "---\nfeatured: [\n---\n")

	results := repo.Audit()
	assert.Assert(t, is.Len(results, 2))
	assert.Equal(t, results[0].Slug, "a")
	assert.Assert(t, results[0].OK())
	assert.Equal(t, results[1].Slug, "b")
	assert.Equal(t, results[1].Status, StatusMalformed)
}

func TestAuditReportsInvalidNames(t *testing.T) {
	repo, dir := newTestRepo(t)
	writeFile(t, dir, "a.mdx", post("A", "2024-01-01", nil, false))
	writeFile(t, dir, "My-Post.mdx", post("Mine", "2024-01-01", nil, false))

	assert.DeepEqual(t, repo.ListSlugs(), []string{"a"})

	results := repo.Audit()
	assert.Assert(t, is.Len(results, 2))
	assert.Equal(t, results[0].Slug, "My-Post")
	assert.Equal(t, results[0].Status, StatusSkipped)
	assert.Equal(t, results[0].Status.String(), "skipped")
	assert.ErrorIs(t, results[0].Err, ErrInvalidSlug)
	assert.Assert(t, !results[0].OK())
	assert.Equal(t, results[1].Slug, "a")
	assert.Assert(t, results[1].OK())
}

func TestMarshalPostIsReadBack(t *testing.T) {
	repo, dir := newTestRepo(t)
	updated := time.Date(2024, 4, 2, 10, 30, 0, 0, time.UTC)
	in := &models.Post{
		PostMeta: models.PostMeta{
			Title:       "Basis Sets: A Field Guide",
			Excerpt:     "From STO-3G to def2-QZVP.",
			PublishedAt: time.Date(2024, 4, 1, 8, 0, 0, 0, time.UTC),
			UpdatedAt:   &updated,
			Tags:        []string{"Basis Sets", "DFT"},
			Featured:    true,
			Author:      models.Author{Name: "Guest"},
		},
		Content: "## Minimal basis\n\nSTO-3G uses three Gaussians.",
	}

	data, err := MarshalPost(in)
	assert.NilError(t, err)
	assert.Assert(t, strings.HasPrefix(string(data), "---\ntitle: 'Basis Sets: A Field Guide'\n") ||
		strings.HasPrefix(string(data), "---\ntitle: \"Basis Sets: A Field Guide\"\n"))
	writeFile(t, dir, "basis-sets.mdx", string(data))

	out, ok := repo.FindBySlug("basis-sets")
	assert.Assert(t, ok)
	assert.Equal(t, out.Title, in.Title)
	assert.Equal(t, out.Excerpt, in.Excerpt)
	assert.Assert(t, out.PublishedAt.Equal(in.PublishedAt))
	assert.Assert(t, out.UpdatedAt.Equal(updated))
	assert.DeepEqual(t, out.Tags, in.Tags)
	assert.Assert(t, out.Featured)
	assert.Equal(t, out.Author.Name, "Guest")
	assert.Equal(t, out.Author.Email, DefaultAuthorEmail)
	assert.Assert(t, is.Contains(out.Content, "STO-3G uses three Gaussians."))
}
