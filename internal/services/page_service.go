package services

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"folio/internal/models"
	"folio/internal/utils"

	"github.com/adrg/frontmatter"
	"github.com/gosimple/slug"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

var ErrPageNotFound = errors.New("page not found")

const (
	pagesDir     = "pages"
	pageExt      = ".md"
	projectsFile = "projects.yaml"
)

type pageFrontMatter struct {
	Title       string `yaml:"title" toml:"title" json:"title"`
	Description string `yaml:"description" toml:"description" json:"description"`
}

// PageService serves the standalone pages and the project list that live
// next to the blog under the content root.
type PageService struct {
	root string
}

func NewPageService(root string) *PageService {
	return &PageService{root: root}
}

// GetPage renders content/pages/<name>.md. The title falls back to the
// name itself, e.g. "learning" becomes "Learning".
func (s *PageService) GetPage(name string) (*models.Page, error) {
	if !slug.IsSlug(name) {
		return nil, fmt.Errorf("%q: %w", name, ErrPageNotFound)
	}

	data, err := os.ReadFile(filepath.Join(s.root, pagesDir, name+pageExt))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%q: %w", name, ErrPageNotFound)
		}
		return nil, fmt.Errorf("读取页面 %s 失败: %w", name, err)
	}

	var fm pageFrontMatter
	body, err := frontmatter.Parse(bytes.NewReader(data), &fm)
	if err != nil {
		return nil, fmt.Errorf("解析页面 %s 失败: %w", name, err)
	}

	content, err := utils.RenderMarkdown(string(body))
	if err != nil {
		return nil, fmt.Errorf("渲染页面 %s 失败: %w", name, err)
	}

	page := &models.Page{
		Name:        name,
		Title:       fm.Title,
		Description: fm.Description,
		Content:     content,
	}
	if page.Title == "" {
		page.Title = cases.Title(language.English).String(strings.ReplaceAll(name, "-", " "))
	}
	if page.Description == "" {
		page.Description = utils.GenerateExcerpt(string(body), descriptionLength)
	}
	return page, nil
}

// Projects reads content/projects.yaml. A missing file means no projects.
func (s *PageService) Projects() ([]models.Project, error) {
	data, err := os.ReadFile(filepath.Join(s.root, projectsFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []models.Project{}, nil
		}
		return nil, fmt.Errorf("读取项目列表失败: %w", err)
	}

	var doc struct {
		Projects []models.Project `yaml:"projects"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("解析项目列表失败: %w", err)
	}
	if doc.Projects == nil {
		doc.Projects = []models.Project{}
	}
	for i := range doc.Projects {
		if doc.Projects[i].ID == "" {
			doc.Projects[i].ID = slug.Make(doc.Projects[i].Title)
		}
	}
	return doc.Projects, nil
}

// FeaturedProjects returns the projects flagged featured, for the home page.
// Errors are logged and yield an empty list.
func (s *PageService) FeaturedProjects() []models.Project {
	projects, err := s.Projects()
	if err != nil {
		log.Printf("加载项目失败: %v", err)
		return []models.Project{}
	}
	featured := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	return featured
}
