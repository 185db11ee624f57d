package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"corpsite/internal/pkg/response"
	"corpsite/internal/pkg/validator"
)

// Handler handles user HTTP requests
type Handler struct {
	service *Service
	repo    *Repository
}

// NewHandler creates user handler
func NewHandler(service *Service, repo *Repository) *Handler {
	return &Handler{service: service, repo: repo}
}

// Login handles POST /auth/login
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errors := validator.Validate(&req); errors != nil {
		response.CustomError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", errors)
		return
	}

	token, u, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if err == ErrInvalidCredentials {
			response.CustomError(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
			return
		}
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"token": token, "user": u})
}

// Me handles GET /main/me
func (h *Handler) Me(c *gin.Context) {
	userID := c.GetString("user_id")
	u, err := h.repo.GetByID(c.Request.Context(), userID)
	if err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	if u == nil {
		response.CustomError(c, http.StatusNotFound, "NOT_FOUND", "User not found")
		return
	}
	response.Success(c, http.StatusOK, u)
}

// List handles GET /main/users
func (h *Handler) List(c *gin.Context) {
	users, err := h.repo.GetAll(c.Request.Context())
	if err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusOK, users)
}

// Create handles POST /main/users
func (h *Handler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errors := validator.Validate(&req); errors != nil {
		response.CustomError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", errors)
		return
	}

	u, err := h.service.Register(c.Request.Context(), req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		if err == ErrEmailExists {
			response.CustomError(c, http.StatusConflict, "EMAIL_EXISTS", "Email already exists")
			return
		}
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusCreated, u)
}

// Update handles PATCH /main/users/:id
func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errors := validator.Validate(&req); errors != nil {
		response.CustomError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", errors)
		return
	}

	if fields := req.fields(); len(fields) > 0 {
		if err := h.repo.Update(c.Request.Context(), id, fields); err != nil {
			if err == ErrUserNotFound {
				response.CustomError(c, http.StatusNotFound, "NOT_FOUND", "User not found")
				return
			}
			response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
			return
		}
	}
	if req.Password != nil {
		if err := h.service.ChangePassword(c.Request.Context(), id, *req.Password); err != nil {
			response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
			return
		}
	}

	u, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusOK, u)
}

// Delete handles DELETE /main/users/:id
func (h *Handler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.CustomError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "User deleted"})
}
