package project

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"corpsite/internal/pkg/response"
	"corpsite/internal/pkg/validator"
	"corpsite/internal/store"
)

// CreateProjectRequest represents admin creation form data
type CreateProjectRequest struct {
	Title          string          `json:"title" validate:"required"`
	Slug           string          `json:"slug"`
	Category       string          `json:"category"`
	Status         string          `json:"status"`
	Location       string          `json:"location"`
	Description    string          `json:"description"`
	Thumbnail      string          `json:"thumbnail"`
	Featured       bool            `json:"featured"`
	Images         []string        `json:"images"`
	Features       []Feature       `json:"features"`
	Specifications []Specification `json:"specifications"`
	Units          string          `json:"units"`
	Type           string          `json:"type"`
	Gradient       string          `json:"gradient"`
	Content        string          `json:"content"`
}

// UpdateProjectRequest carries a partial merge; only non-nil fields are written.
type UpdateProjectRequest struct {
	Title          *string          `json:"title"`
	Slug           *string          `json:"slug"`
	Category       *string          `json:"category"`
	Status         *string          `json:"status"`
	Location       *string          `json:"location"`
	Description    *string          `json:"description"`
	Thumbnail      *string          `json:"thumbnail"`
	Featured       *bool            `json:"featured"`
	Images         *[]string        `json:"images"`
	Features       *[]Feature       `json:"features"`
	Specifications *[]Specification `json:"specifications"`
	Units          *string          `json:"units"`
	Type           *string          `json:"type"`
	Gradient       *string          `json:"gradient"`
	Content        *string          `json:"content"`
}

func (req *UpdateProjectRequest) fields() map[string]any {
	fields := make(map[string]any)
	set := func(key string, v *string) {
		if v != nil {
			fields[key] = *v
		}
	}
	set("title", req.Title)
	set("slug", req.Slug)
	set("category", req.Category)
	set("status", req.Status)
	set("location", req.Location)
	set("description", req.Description)
	set("thumbnail", req.Thumbnail)
	set("units", req.Units)
	set("type", req.Type)
	set("gradient", req.Gradient)
	set("content", req.Content)
	if req.Featured != nil {
		fields["featured"] = *req.Featured
	}
	if req.Images != nil {
		fields["images"] = *req.Images
	}
	if req.Features != nil {
		fields["features"] = encodeFeatures(*req.Features)
	}
	if req.Specifications != nil {
		fields["specifications"] = encodeSpecifications(*req.Specifications)
	}
	return fields
}

// Handler handles project HTTP requests
type Handler struct {
	repo *Repository
}

// NewHandler creates project handler
func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// List handles GET /projects and GET /main/projects
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		projects []*Project
		err      error
	)
	if c.Query("featured") == "true" {
		projects, err = h.repo.GetFeatured(ctx)
	} else {
		projects, err = h.repo.GetAll(ctx)
	}
	if err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusOK, projects)
}

// GetBySlug handles GET /projects/:slug (public)
func (h *Handler) GetBySlug(c *gin.Context) {
	p, err := h.repo.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	if p == nil {
		response.CustomError(c, http.StatusNotFound, "NOT_FOUND", "Project not found")
		return
	}
	response.Success(c, http.StatusOK, p)
}

// Get handles GET /main/projects/:id
func (h *Handler) Get(c *gin.Context) {
	p, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	if p == nil {
		response.CustomError(c, http.StatusNotFound, "NOT_FOUND", "Project not found")
		return
	}
	response.Success(c, http.StatusOK, p)
}

// Create handles POST /main/projects
func (h *Handler) Create(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errors := validator.Validate(&req); errors != nil {
		response.CustomError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", errors)
		return
	}

	p, err := h.repo.Create(c.Request.Context(), &Project{
		Title:          req.Title,
		Slug:           req.Slug,
		Category:       req.Category,
		Status:         req.Status,
		Location:       req.Location,
		Description:    req.Description,
		Thumbnail:      req.Thumbnail,
		Featured:       req.Featured,
		Images:         req.Images,
		Features:       req.Features,
		Specifications: req.Specifications,
		Units:          req.Units,
		Type:           req.Type,
		Gradient:       req.Gradient,
		Content:        req.Content,
	})
	if err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusCreated, p)
}

// Update handles PATCH /main/projects/:id
func (h *Handler) Update(c *gin.Context) {
	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if err := h.repo.Update(c.Request.Context(), c.Param("id"), req.fields()); err != nil {
		if err == store.ErrNotFound {
			response.CustomError(c, http.StatusNotFound, "NOT_FOUND", "Project not found")
			return
		}
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Project updated"})
}

// Delete handles DELETE /main/projects/:id
func (h *Handler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Project deleted"})
}
