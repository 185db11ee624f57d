package organization

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"corpsite/internal/pkg/response"
	"corpsite/internal/pkg/validator"
	"corpsite/internal/store"
)

// CreateMemberRequest represents admin creation form data
type CreateMemberRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Photo       string `json:"photo"`
}

// UpdateMemberRequest carries a partial merge; only non-nil fields are written.
type UpdateMemberRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Photo       *string `json:"photo"`
}

// Handler handles organization HTTP requests
type Handler struct {
	repo *Repository
}

// NewHandler creates organization handler
func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// List handles GET /organization and GET /main/organizations
func (h *Handler) List(c *gin.Context) {
	members, err := h.repo.GetAll(c.Request.Context())
	if err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusOK, members)
}

// Get handles GET /main/organizations/:id
func (h *Handler) Get(c *gin.Context) {
	m, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	if m == nil {
		response.CustomError(c, http.StatusNotFound, "NOT_FOUND", "Member not found")
		return
	}
	response.Success(c, http.StatusOK, m)
}

// Create handles POST /main/organizations
func (h *Handler) Create(c *gin.Context) {
	var req CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errors := validator.Validate(&req); errors != nil {
		response.CustomError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", errors)
		return
	}

	m, err := h.repo.Create(c.Request.Context(), &Member{
		Name:        req.Name,
		Description: req.Description,
		Photo:       req.Photo,
	})
	if err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusCreated, m)
}

// Update handles PATCH /main/organizations/:id
func (h *Handler) Update(c *gin.Context) {
	var req UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	fields := make(map[string]any)
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Photo != nil {
		fields["photo"] = *req.Photo
	}

	if err := h.repo.Update(c.Request.Context(), c.Param("id"), fields); err != nil {
		if err == store.ErrNotFound {
			response.CustomError(c, http.StatusNotFound, "NOT_FOUND", "Member not found")
			return
		}
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Member updated"})
}

// Delete handles DELETE /main/organizations/:id
func (h *Handler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Member deleted"})
}
