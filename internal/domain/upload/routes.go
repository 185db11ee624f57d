package upload

import "github.com/gin-gonic/gin"

// RegisterAdminRoutes registers media upload routes
func RegisterAdminRoutes(r *gin.RouterGroup, handler *Handler) {
	r.POST("/uploads", handler.Upload)
	r.DELETE("/uploads", handler.Delete)
}
