package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"corpsite/internal/pkg/response"
)

// Handler handles dashboard HTTP requests
type Handler struct {
	repo *Repository
}

// NewHandler creates dashboard handler
func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// Counts handles GET /main/dashboard
func (h *Handler) Counts(c *gin.Context) {
	counts, err := h.repo.GetCounts(c.Request.Context())
	if err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusOK, counts)
}
