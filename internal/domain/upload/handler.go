package upload

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"corpsite/internal/pkg/response"
)

// Handler handles upload HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates upload handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Upload handles POST /main/uploads (multipart form, field "file")
func (h *Handler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		response.CustomError(c, http.StatusBadRequest, "FILE_MISSING", "File is required")
		return
	}

	uploaded, err := h.service.Upload(c.Request.Context(), header)
	if err != nil {
		switch err {
		case ErrFileTooLarge:
			response.CustomError(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "File exceeds maximum size")
		case ErrUnsupportedType:
			response.CustomError(c, http.StatusUnsupportedMediaType, "UNSUPPORTED_TYPE", "Unsupported file type")
		default:
			response.CustomError(c, http.StatusInternalServerError, "UPLOAD_FAILED", err)
		}
		return
	}
	response.Success(c, http.StatusCreated, uploaded)
}

// Delete handles DELETE /main/uploads (query param "object")
func (h *Handler) Delete(c *gin.Context) {
	objectName := c.Query("object")
	if objectName == "" {
		response.CustomError(c, http.StatusBadRequest, "OBJECT_MISSING", "Object name is required")
		return
	}
	if err := h.service.Delete(c.Request.Context(), objectName); err != nil {
		response.CustomError(c, http.StatusInternalServerError, "DELETE_FAILED", err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Object deleted"})
}
