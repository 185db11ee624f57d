package company

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"corpsite/internal/pkg/response"
	"corpsite/internal/pkg/validator"
)

// UpdateProfileRequest carries a partial merge; only non-nil fields are written.
type UpdateProfileRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Logo        *string `json:"logo"`
	Email       *string `json:"email" validate:"omitempty,email"`
	MobilePhone *string `json:"mobile_phone"`
	Address     *string `json:"address"`
	Facebook    *string `json:"facebook"`
	Instagram   *string `json:"instagram"`
	TikTok      *string `json:"tiktok"`
	YouTube     *string `json:"youtube"`
}

func (req *UpdateProfileRequest) fields() map[string]any {
	fields := make(map[string]any)
	set := func(key string, v *string) {
		if v != nil {
			fields[key] = *v
		}
	}
	set("name", req.Name)
	set("description", req.Description)
	set("logo", req.Logo)
	set("email", req.Email)
	set("mobile_phone", req.MobilePhone)
	set("address", req.Address)
	set("facebook", req.Facebook)
	set("instagram", req.Instagram)
	set("tiktok", req.TikTok)
	set("youtube", req.YouTube)
	return fields
}

// Handler handles company profile and page HTTP requests
type Handler struct {
	repo *Repository
}

// NewHandler creates company handler
func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// GetProfile handles GET /company-profile and GET /main/settings/profile.
// A missing singleton is served as an empty profile so the footer always has
// something coherent to render.
func (h *Handler) GetProfile(c *gin.Context) {
	profile, err := h.repo.GetProfile(c.Request.Context())
	if err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	if profile == nil {
		profile = &Profile{}
	}
	response.Success(c, http.StatusOK, profile)
}

// UpdateProfile handles PATCH /main/settings/profile
func (h *Handler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errors := validator.Validate(&req); errors != nil {
		response.CustomError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", errors)
		return
	}

	if err := h.repo.SaveProfile(c.Request.Context(), req.fields()); err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Profile updated"})
}

// GetPage handles GET /pages/:name and GET /main/settings/pages/:name
func (h *Handler) GetPage(c *gin.Context) {
	name := c.Param("name")
	if !PageNames[name] {
		response.CustomError(c, http.StatusNotFound, "NOT_FOUND", "Unknown page")
		return
	}

	page, err := h.repo.GetPage(c.Request.Context(), name)
	if err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	if page == nil {
		page = map[string]any{}
	}
	response.Success(c, http.StatusOK, page)
}

// UpdatePage handles PATCH /main/settings/pages/:name
func (h *Handler) UpdatePage(c *gin.Context) {
	name := c.Param("name")
	if !PageNames[name] {
		response.CustomError(c, http.StatusNotFound, "NOT_FOUND", "Unknown page")
		return
	}

	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	// System timestamps are store-managed; a form must not overwrite them.
	delete(fields, "created_at")
	delete(fields, "updated_at")

	if err := h.repo.SavePage(c.Request.Context(), name, fields); err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Page updated"})
}
