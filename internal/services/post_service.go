package services

import (
	"fmt"
	"html/template"
	"log"

	"folio/internal/constants"
	"folio/internal/models"
	"folio/internal/render"
	"folio/internal/repository"
	"folio/internal/utils"
)

const descriptionLength = 160

type PostService struct {
	repo           *repository.PostRepository
	renderer       *render.Renderer
	settingService *SettingService
}

func NewPostService(repo *repository.PostRepository, renderer *render.Renderer, settingService *SettingService) *PostService {
	return &PostService{
		repo:           repo,
		renderer:       renderer,
		settingService: settingService,
	}
}

// GetPost loads and renders one post. Missing and broken files both come
// back as repository.ErrPostNotFound; the repository logs the latter.
func (s *PostService) GetPost(slug string) (*models.RenderedPost, error) {
	post, ok := s.repo.FindBySlug(slug)
	if !ok {
		return nil, fmt.Errorf("%q: %w", slug, repository.ErrPostNotFound)
	}
	return s.renderPost(post), nil
}

func (s *PostService) ListPosts() []models.PostMeta {
	return s.repo.FindAll()
}

func (s *PostService) FeaturedPosts() []models.PostMeta {
	return s.repo.FindFeatured()
}

func (s *PostService) PostsByTag(tag string) []models.PostMeta {
	return s.repo.FindByTag(tag)
}

func (s *PostService) Tags() []string {
	return s.repo.AllTags()
}

// Audit reports the load status of every content file.
func (s *PostService) Audit() []repository.LoadResult {
	return s.repo.Audit()
}

// PostsPage splits the blog index into the featured section and one page of
// the remaining posts. total counts the non-featured posts.
func (s *PostService) PostsPage(page, pageSize int) (featured, others []models.PostMeta, total int) {
	all := s.repo.FindAll()
	featured = make([]models.PostMeta, 0)
	rest := make([]models.PostMeta, 0, len(all))
	for _, m := range all {
		if m.Featured {
			featured = append(featured, m)
		} else {
			rest = append(rest, m)
		}
	}
	return featured, utils.Paginate(rest, page, pageSize), len(rest)
}

// Render converts a post body to HTML, minified when the minify_html
// setting is on. A minifier failure falls back to the unminified HTML.
func (s *PostService) Render(body string) template.HTML {
	html := s.renderer.Render(body)
	if s.settingService != nil && s.settingService.GetBool(constants.SettingMinifyHTML) {
		minified, err := utils.MinifyHTML(html)
		if err != nil {
			log.Printf("压缩 HTML 失败: %v", err)
		} else {
			html = minified
		}
	}
	return template.HTML(html)
}

func (s *PostService) renderPost(post *models.Post) *models.RenderedPost {
	description := post.Excerpt
	if description == "" {
		description = utils.GenerateExcerpt(post.Content, descriptionLength)
	}
	return &models.RenderedPost{
		PostMeta:    post.PostMeta,
		Content:     s.Render(post.Content),
		Description: description,
	}
}
