package contact

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"corpsite/internal/pkg/response"
	"corpsite/internal/pkg/validator"
)

// SubmitRequest represents the public contact form
type SubmitRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

// Handler handles contact HTTP requests
type Handler struct {
	repo *Repository
}

// NewHandler creates contact handler
func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// Submit handles POST /contact (public form)
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errors := validator.Validate(&req); errors != nil {
		response.CustomError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", errors)
		return
	}

	sub, err := h.repo.Create(c.Request.Context(), &Submission{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusCreated, sub)
}

// List handles GET /main/contact-submissions
func (h *Handler) List(c *gin.Context) {
	subs, err := h.repo.GetAll(c.Request.Context())
	if err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusOK, subs)
}

// Open handles GET /main/contact-submissions/:id; viewing a new submission
// marks it read.
func (h *Handler) Open(c *gin.Context) {
	sub, err := h.repo.Open(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	if sub == nil {
		response.CustomError(c, http.StatusNotFound, "NOT_FOUND", "Submission not found")
		return
	}
	response.Success(c, http.StatusOK, sub)
}

// MarkReplied handles POST /main/contact-submissions/:id/replied
func (h *Handler) MarkReplied(c *gin.Context) {
	if err := h.repo.MarkReplied(c.Request.Context(), c.Param("id")); err != nil {
		if err == ErrSubmissionNotFound {
			response.CustomError(c, http.StatusNotFound, "NOT_FOUND", "Submission not found")
			return
		}
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Submission marked as replied"})
}

// Delete handles DELETE /main/contact-submissions/:id
func (h *Handler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Submission deleted"})
}
