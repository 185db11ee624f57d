package division

import "github.com/gin-gonic/gin"

// RegisterPublicRoutes registers public division routes
func RegisterPublicRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/divisions", handler.List)
}

// RegisterAdminRoutes registers admin division routes
func RegisterAdminRoutes(r *gin.RouterGroup, handler *Handler) {
	divisions := r.Group("/divisions")
	{
		divisions.GET("", handler.List)
		divisions.GET("/:id", handler.Get)
		divisions.POST("", handler.Create)
		divisions.PATCH("/:id", handler.Update)
		divisions.DELETE("/:id", handler.Delete)
	}
}
