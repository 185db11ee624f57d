package sitedata

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"corpsite/internal/pkg/response"
)

// Handler handles site data HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates site data handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Layout handles GET /site/layout
func (h *Handler) Layout(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.Layout(c.Request.Context()))
}

// Home handles GET /site/home
func (h *Handler) Home(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.Home(c.Request.Context()))
}
