package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"folio/internal/repository"
	"folio/internal/services"
	"folio/internal/utils"

	"github.com/gin-gonic/gin"
)

// PageSize is the number of non-featured posts per blog index page.
const PageSize = 10

type BlogHandler struct {
	postService *services.PostService
	pageService *services.PageService
}

func NewBlogHandler(postService *services.PostService, pageService *services.PageService) *BlogHandler {
	return &BlogHandler{
		postService: postService,
		pageService: pageService,
	}
}

// Home shows the intro page together with featured posts and projects.
func (h *BlogHandler) Home(c *gin.Context) {
	page, err := h.pageService.GetPage("home")
	if err != nil && !errors.Is(err, services.ErrPageNotFound) {
		log.Printf("加载首页失败: %v", err)
	}

	render(c, http.StatusOK, "home.html", gin.H{
		"page":     page,
		"featured": h.postService.FeaturedPosts(),
		"projects": h.pageService.FeaturedProjects(),
		"is_index": true,
	})
}

// Page returns a handler for the markdown page content/pages/<name>.md.
func (h *BlogHandler) Page(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := h.pageService.GetPage(name)
		if err != nil {
			if errors.Is(err, services.ErrPageNotFound) {
				h.NotFound(c)
				return
			}
			log.Printf("加载页面 %s 失败: %v", name, err)
			renderError(c, http.StatusInternalServerError, "加载页面失败")
			return
		}
		render(c, http.StatusOK, "page.html", gin.H{
			"page":  page,
			"Title": page.Title,
		})
	}
}

func (h *BlogHandler) Projects(c *gin.Context) {
	projects, err := h.pageService.Projects()
	if err != nil {
		log.Printf("加载项目失败: %v", err)
		renderError(c, http.StatusInternalServerError, "加载项目失败")
		return
	}
	render(c, http.StatusOK, "projects.html", gin.H{
		"projects": projects,
		"Title":    "Projects",
	})
}

// Index lists the featured posts and one page of the others.
func (h *BlogHandler) Index(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	featured, others, total := h.postService.PostsPage(page, PageSize)
	totalPages := utils.TotalPages(total, PageSize)
	if totalPages > 0 && page > totalPages {
		h.NotFound(c)
		return
	}

	// Featured posts only head the first page.
	if page > 1 {
		featured = nil
	}

	render(c, http.StatusOK, "blog.html", gin.H{
		"featured":   featured,
		"posts":      others,
		"tags":       h.postService.Tags(),
		"Pagination": utils.GeneratePagination(page, totalPages),
		"Title":      "Blog",
	})
}

func (h *BlogHandler) ShowPost(c *gin.Context) {
	post, err := h.postService.GetPost(c.Param("slug"))
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			h.NotFound(c)
			return
		}
		renderError(c, http.StatusInternalServerError, "加载文章失败")
		return
	}

	render(c, http.StatusOK, "post.html", gin.H{
		"post":  post,
		"Title": post.Title,
	})
}

// Tag lists posts carrying a tag. No match is an empty list, not a 404.
func (h *BlogHandler) Tag(c *gin.Context) {
	tag := c.Param("tag")
	render(c, http.StatusOK, "tag.html", gin.H{
		"tag":   tag,
		"posts": h.postService.PostsByTag(tag),
		"Title": "#" + tag,
	})
}

func (h *BlogHandler) NotFound(c *gin.Context) {
	render(c, http.StatusNotFound, "404.html", gin.H{"Title": "Not Found"})
}
