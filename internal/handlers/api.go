package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"folio/internal/models"
	"folio/internal/repository"
	"folio/internal/services"

	"github.com/gin-gonic/gin"
)

type APIHandler struct {
	postService *services.PostService
}

func NewAPIHandler(postService *services.PostService) *APIHandler {
	return &APIHandler{postService: postService}
}

// FindPosts lists post metadata. ?tag= filters by tag, ?featured=true keeps
// only featured posts.
func (h *APIHandler) FindPosts(c *gin.Context) {
	var posts []models.PostMeta
	if tag := c.Query("tag"); tag != "" {
		posts = h.postService.PostsByTag(tag)
	} else {
		posts = h.postService.ListPosts()
	}

	if featured, err := strconv.ParseBool(c.DefaultQuery("featured", "false")); err == nil && featured {
		kept := make([]models.PostMeta, 0, len(posts))
		for _, p := range posts {
			if p.Featured {
				kept = append(kept, p)
			}
		}
		posts = kept
	}

	c.JSON(http.StatusOK, gin.H{
		"posts": posts,
		"total": len(posts),
	})
}

func (h *APIHandler) GetPost(c *gin.Context) {
	post, err := h.postService.GetPost(c.Param("slug"))
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "文章不存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *APIHandler) Tags(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tags": h.postService.Tags()})
}

type auditEntry struct {
	Slug   string `json:"slug"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Audit reports the load status of every content file.
func (h *APIHandler) Audit(c *gin.Context) {
	results := h.postService.Audit()
	entries := make([]auditEntry, 0, len(results))
	malformed, skipped := 0, 0
	for _, r := range results {
		e := auditEntry{Slug: r.Slug, Status: r.Status.String()}
		if r.Err != nil {
			e.Error = r.Err.Error()
		}
		switch r.Status {
		case repository.StatusMalformed:
			malformed++
		case repository.StatusSkipped:
			skipped++
		}
		entries = append(entries, e)
	}
	c.JSON(http.StatusOK, gin.H{
		"files":     entries,
		"total":     len(entries),
		"malformed": malformed,
		"skipped":   skipped,
	})
}
