package subcompany

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"corpsite/internal/pkg/response"
	"corpsite/internal/pkg/validator"
)

// Handler handles sub-company HTTP requests
type Handler struct {
	repo *Repository
}

// NewHandler creates sub-company handler
func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// List handles GET /sub-companies (public and admin)
func (h *Handler) List(c *gin.Context) {
	subs, err := h.repo.GetAll(c.Request.Context())
	if err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusOK, subs)
}

// Resolve handles GET /sub-companies/:slug (public detail page)
func (h *Handler) Resolve(c *gin.Context) {
	sc, err := h.repo.ResolveSlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	if sc == nil {
		response.CustomError(c, http.StatusNotFound, "NOT_FOUND", "Sub-company not found")
		return
	}
	response.Success(c, http.StatusOK, sc)
}

// Get handles GET /main/sub-companies/:id
func (h *Handler) Get(c *gin.Context) {
	sc, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	if sc == nil {
		response.CustomError(c, http.StatusNotFound, "NOT_FOUND", "Sub-company not found")
		return
	}
	response.Success(c, http.StatusOK, sc)
}

// Create handles POST /main/sub-companies
func (h *Handler) Create(c *gin.Context) {
	var req CreateSubCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errors := validator.Validate(&req); errors != nil {
		response.CustomError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", errors)
		return
	}

	sc, err := h.repo.Create(c.Request.Context(), &SubCompany{
		Name:        req.Name,
		Description: req.Description,
		Logo:        req.Logo,
		Email:       req.Email,
		MobilePhone: req.MobilePhone,
		Address:     req.Address,
		Facebook:    req.Facebook,
		Instagram:   req.Instagram,
		TikTok:      req.TikTok,
		YouTube:     req.YouTube,
	})
	if err != nil {
		if err == ErrSlugTaken {
			response.CustomError(c, http.StatusConflict, "SLUG_TAKEN", "A sub-company with this name already exists")
			return
		}
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}

	response.Success(c, http.StatusCreated, sc)
}

// Update handles PATCH /main/sub-companies/:id
func (h *Handler) Update(c *gin.Context) {
	var req UpdateSubCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errors := validator.Validate(&req); errors != nil {
		response.CustomError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", errors)
		return
	}

	if err := h.repo.Update(c.Request.Context(), c.Param("id"), req.fields()); err != nil {
		switch err {
		case ErrNotFound:
			response.CustomError(c, http.StatusNotFound, "NOT_FOUND", "Sub-company not found")
		case ErrSlugTaken:
			response.CustomError(c, http.StatusConflict, "SLUG_TAKEN", "A sub-company with this name already exists")
		default:
			response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Sub-company updated"})
}

// Delete handles DELETE /main/sub-companies/:id
func (h *Handler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Sub-company deleted"})
}
