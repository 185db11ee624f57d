package gallery

import "github.com/gin-gonic/gin"

// RegisterPublicRoutes registers public gallery routes
func RegisterPublicRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/gallery", handler.List)
	r.GET("/gallery/:id", handler.Get)
}

// RegisterAdminRoutes registers admin gallery routes
func RegisterAdminRoutes(r *gin.RouterGroup, handler *Handler) {
	gallery := r.Group("/gallery")
	{
		gallery.GET("", handler.List)
		gallery.GET("/:id", handler.Get)
		gallery.POST("", handler.Create)
		gallery.PATCH("/:id", handler.Update)
		gallery.DELETE("/:id", handler.Delete)
	}
}
