package contact

import "github.com/gin-gonic/gin"

// RegisterPublicRoutes registers the public contact form route
func RegisterPublicRoutes(r *gin.RouterGroup, handler *Handler) {
	r.POST("/contact", handler.Submit)
}

// RegisterAdminRoutes registers admin inbox routes
func RegisterAdminRoutes(r *gin.RouterGroup, handler *Handler) {
	inbox := r.Group("/contact-submissions")
	{
		inbox.GET("", handler.List)
		inbox.GET("/:id", handler.Open)
		inbox.POST("/:id/replied", handler.MarkReplied)
		inbox.DELETE("/:id", handler.Delete)
	}
}
