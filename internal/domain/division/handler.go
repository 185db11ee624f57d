package division

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"corpsite/internal/pkg/response"
	"corpsite/internal/pkg/validator"
	"corpsite/internal/store"
)

// Handler handles division HTTP requests
type Handler struct {
	repo *Repository
}

// NewHandler creates division handler
func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// List handles GET /divisions and GET /main/divisions. The admin list
// resolves each parent name so the UI never shows a raw foreign key.
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		divisions []*Division
		err       error
	)
	if subID := c.Query("sub_company_id"); subID != "" {
		divisions, err = h.repo.GetBySubCompany(ctx, subID)
	} else {
		divisions, err = h.repo.GetAll(ctx)
	}
	if err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}

	views := make([]DivisionView, 0, len(divisions))
	for _, d := range divisions {
		views = append(views, DivisionView{Division: *d, SubCompanyName: h.repo.ParentName(ctx, d)})
	}
	response.Success(c, http.StatusOK, views)
}

// Get handles GET /main/divisions/:id
func (h *Handler) Get(c *gin.Context) {
	d, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	if d == nil {
		response.CustomError(c, http.StatusNotFound, "NOT_FOUND", "Division not found")
		return
	}
	response.Success(c, http.StatusOK, DivisionView{Division: *d, SubCompanyName: h.repo.ParentName(c.Request.Context(), d)})
}

// Create handles POST /main/divisions
func (h *Handler) Create(c *gin.Context) {
	var req CreateDivisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errors := validator.Validate(&req); errors != nil {
		response.CustomError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", errors)
		return
	}

	d, err := h.repo.Create(c.Request.Context(), &Division{
		Name:         req.Name,
		Description:  req.Description,
		Icon:         req.Icon,
		SubCompanyID: req.SubCompanyID,
	})
	if err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusCreated, d)
}

// Update handles PATCH /main/divisions/:id
func (h *Handler) Update(c *gin.Context) {
	var req UpdateDivisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if err := h.repo.Update(c.Request.Context(), c.Param("id"), req.fields()); err != nil {
		if err == store.ErrNotFound {
			response.CustomError(c, http.StatusNotFound, "NOT_FOUND", "Division not found")
			return
		}
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Division updated"})
}

// Delete handles DELETE /main/divisions/:id
func (h *Handler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Division deleted"})
}
