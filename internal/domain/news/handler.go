package news

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"corpsite/internal/pkg/response"
	"corpsite/internal/pkg/validator"
	"corpsite/internal/store"
)

// CreateArticleRequest represents admin creation form data
type CreateArticleRequest struct {
	Title     string   `json:"title" validate:"required"`
	Slug      string   `json:"slug"`
	Content   string   `json:"content"`
	Excerpt   string   `json:"excerpt"`
	Thumbnail string   `json:"thumbnail"`
	Author    string   `json:"author"`
	Status    string   `json:"status" validate:"omitempty,oneof=draft published"`
	Keywords  []string `json:"keywords"`
}

// UpdateArticleRequest carries a partial merge; only non-nil fields are written.
type UpdateArticleRequest struct {
	Title     *string   `json:"title"`
	Slug      *string   `json:"slug"`
	Content   *string   `json:"content"`
	Excerpt   *string   `json:"excerpt"`
	Thumbnail *string   `json:"thumbnail"`
	Author    *string   `json:"author"`
	Status    *string   `json:"status" validate:"omitempty,oneof=draft published"`
	Keywords  *[]string `json:"keywords"`
}

func (req *UpdateArticleRequest) fields() map[string]any {
	fields := make(map[string]any)
	set := func(key string, v *string) {
		if v != nil {
			fields[key] = *v
		}
	}
	set("title", req.Title)
	set("slug", req.Slug)
	set("content", req.Content)
	set("excerpt", req.Excerpt)
	set("thumbnail", req.Thumbnail)
	set("author", req.Author)
	set("status", req.Status)
	if req.Keywords != nil {
		fields["keywords"] = *req.Keywords
	}
	return fields
}

// Handler handles news HTTP requests
type Handler struct {
	repo *Repository
}

// NewHandler creates news handler
func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// ListPublished handles GET /news (public)
func (h *Handler) ListPublished(c *gin.Context) {
	articles, err := h.repo.GetPublished(c.Request.Context())
	if err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusOK, articles)
}

// GetBySlug handles GET /news/:slug (public); drafts stay invisible here.
func (h *Handler) GetBySlug(c *gin.Context) {
	article, err := h.repo.GetPublishedBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	if article == nil {
		response.CustomError(c, http.StatusNotFound, "NOT_FOUND", "Article not found")
		return
	}
	response.Success(c, http.StatusOK, article)
}

// List handles GET /main/news (admin, drafts included)
func (h *Handler) List(c *gin.Context) {
	articles, err := h.repo.GetAll(c.Request.Context())
	if err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusOK, articles)
}

// Get handles GET /main/news/:id
func (h *Handler) Get(c *gin.Context) {
	article, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	if article == nil {
		response.CustomError(c, http.StatusNotFound, "NOT_FOUND", "Article not found")
		return
	}
	response.Success(c, http.StatusOK, article)
}

// Create handles POST /main/news
func (h *Handler) Create(c *gin.Context) {
	var req CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errors := validator.Validate(&req); errors != nil {
		response.CustomError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", errors)
		return
	}

	article, err := h.repo.Create(c.Request.Context(), &Article{
		Title:     req.Title,
		Slug:      req.Slug,
		Content:   req.Content,
		Excerpt:   req.Excerpt,
		Thumbnail: req.Thumbnail,
		Author:    req.Author,
		Status:    req.Status,
		Keywords:  req.Keywords,
	})
	if err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusCreated, article)
}

// Update handles PATCH /main/news/:id
func (h *Handler) Update(c *gin.Context) {
	var req UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errors := validator.Validate(&req); errors != nil {
		response.CustomError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", errors)
		return
	}

	if err := h.repo.Update(c.Request.Context(), c.Param("id"), req.fields()); err != nil {
		if err == store.ErrNotFound {
			response.CustomError(c, http.StatusNotFound, "NOT_FOUND", "Article not found")
			return
		}
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Article updated"})
}

// Delete handles DELETE /main/news/:id
func (h *Handler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Article deleted"})
}
