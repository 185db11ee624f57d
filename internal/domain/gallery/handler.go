package gallery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"corpsite/internal/pkg/response"
	"corpsite/internal/pkg/validator"
	"corpsite/internal/store"
)

// CreateItemRequest represents admin creation form data
type CreateItemRequest struct {
	Name   string  `json:"name" validate:"required"`
	Type   string  `json:"type" validate:"required,oneof=Home gallery"`
	Images []Media `json:"images"`
}

// UpdateItemRequest carries a partial merge; only non-nil fields are written.
type UpdateItemRequest struct {
	Name   *string  `json:"name"`
	Type   *string  `json:"type" validate:"omitempty,oneof=Home gallery"`
	Images *[]Media `json:"images"`
}

// Handler handles gallery HTTP requests
type Handler struct {
	repo *Repository
}

// NewHandler creates gallery handler
func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// List handles GET /gallery and GET /main/gallery, optionally filtered by type.
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		items []*Item
		err   error
	)
	if t := c.Query("type"); t != "" {
		items, err = h.repo.GetByType(ctx, t)
	} else {
		items, err = h.repo.GetAll(ctx)
	}
	if err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// Get handles GET /gallery/:id and GET /main/gallery/:id. The detail payload
// carries photo/video counts so an empty media list renders as explicit zeros.
func (h *Handler) Get(c *gin.Context) {
	item, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	if item == nil {
		response.CustomError(c, http.StatusNotFound, "NOT_FOUND", "Gallery item not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"item":        item,
		"photo_count": item.PhotoCount(),
		"video_count": item.VideoCount(),
	})
}

// Create handles POST /main/gallery
func (h *Handler) Create(c *gin.Context) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errors := validator.Validate(&req); errors != nil {
		response.CustomError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", errors)
		return
	}

	item, err := h.repo.Create(c.Request.Context(), &Item{
		Name:   req.Name,
		Type:   req.Type,
		Images: req.Images,
	})
	if err != nil {
		if err == ErrInvalidType || err == ErrInvalidMedia {
			response.CustomError(c, http.StatusUnprocessableEntity, "INVALID_MEDIA", err)
			return
		}
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusCreated, item)
}

// Update handles PATCH /main/gallery/:id
func (h *Handler) Update(c *gin.Context) {
	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errors := validator.Validate(&req); errors != nil {
		response.CustomError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", errors)
		return
	}

	ctx := c.Request.Context()
	id := c.Param("id")

	fields := make(map[string]any)
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Type != nil {
		fields["type"] = *req.Type
	}
	if req.Images != nil {
		// The media constraint depends on the item type, which may come from
		// this request or from the stored document.
		itemType := ""
		if req.Type != nil {
			itemType = *req.Type
		} else {
			existing, err := h.repo.GetByID(ctx, id)
			if err != nil {
				response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
				return
			}
			if existing == nil {
				response.CustomError(c, http.StatusNotFound, "NOT_FOUND", "Gallery item not found")
				return
			}
			itemType = existing.Type
		}
		if err := validateMedia(itemType, *req.Images); err != nil {
			response.CustomError(c, http.StatusUnprocessableEntity, "INVALID_MEDIA", err)
			return
		}
		fields["images"] = encodeMedia(*req.Images)
	}

	if err := h.repo.Update(ctx, id, fields); err != nil {
		if err == store.ErrNotFound {
			response.CustomError(c, http.StatusNotFound, "NOT_FOUND", "Gallery item not found")
			return
		}
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Gallery item updated"})
}

// Delete handles DELETE /main/gallery/:id
func (h *Handler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Gallery item deleted"})
}
