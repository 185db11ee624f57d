package benefit

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"corpsite/internal/pkg/response"
	"corpsite/internal/pkg/validator"
	"corpsite/internal/store"
)

// CreateBenefitRequest represents admin creation form data
type CreateBenefitRequest struct {
	Name         string `json:"name" validate:"required"`
	Description  string `json:"description"`
	Icon         string `json:"icon"`
	SubCompanyID string `json:"sub_company_id" validate:"required"`
}

// UpdateBenefitRequest carries a partial merge; only non-nil fields are written.
type UpdateBenefitRequest struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	Icon         *string `json:"icon"`
	SubCompanyID *string `json:"sub_company_id"`
}

func (req *UpdateBenefitRequest) fields() map[string]any {
	fields := make(map[string]any)
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Icon != nil {
		fields["icon"] = *req.Icon
	}
	if req.SubCompanyID != nil {
		fields["sub_company_id"] = *req.SubCompanyID
	}
	return fields
}

// BenefitView is a list row with the parent name resolved for display.
type BenefitView struct {
	Benefit
	SubCompanyName string `json:"sub_company_name"`
}

// Handler handles benefit HTTP requests
type Handler struct {
	repo *Repository
}

// NewHandler creates benefit handler
func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// List handles GET /benefits and GET /main/benefits
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		benefits []*Benefit
		err      error
	)
	if subID := c.Query("sub_company_id"); subID != "" {
		benefits, err = h.repo.GetBySubCompany(ctx, subID)
	} else {
		benefits, err = h.repo.GetAll(ctx)
	}
	if err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}

	views := make([]BenefitView, 0, len(benefits))
	for _, b := range benefits {
		views = append(views, BenefitView{Benefit: *b, SubCompanyName: h.repo.ParentName(ctx, b)})
	}
	response.Success(c, http.StatusOK, views)
}

// Get handles GET /main/benefits/:id
func (h *Handler) Get(c *gin.Context) {
	b, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	if b == nil {
		response.CustomError(c, http.StatusNotFound, "NOT_FOUND", "Benefit not found")
		return
	}
	response.Success(c, http.StatusOK, BenefitView{Benefit: *b, SubCompanyName: h.repo.ParentName(c.Request.Context(), b)})
}

// Create handles POST /main/benefits
func (h *Handler) Create(c *gin.Context) {
	var req CreateBenefitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errors := validator.Validate(&req); errors != nil {
		response.CustomError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", errors)
		return
	}

	b, err := h.repo.Create(c.Request.Context(), &Benefit{
		Name:         req.Name,
		Description:  req.Description,
		Icon:         req.Icon,
		SubCompanyID: req.SubCompanyID,
	})
	if err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusCreated, b)
}

// Update handles PATCH /main/benefits/:id
func (h *Handler) Update(c *gin.Context) {
	var req UpdateBenefitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if err := h.repo.Update(c.Request.Context(), c.Param("id"), req.fields()); err != nil {
		if err == store.ErrNotFound {
			response.CustomError(c, http.StatusNotFound, "NOT_FOUND", "Benefit not found")
			return
		}
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Benefit updated"})
}

// Delete handles DELETE /main/benefits/:id
func (h *Handler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Benefit deleted"})
}
