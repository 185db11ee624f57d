package dashboard

import "github.com/gin-gonic/gin"

// RegisterAdminRoutes registers dashboard routes
func RegisterAdminRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/dashboard", handler.Counts)
}
