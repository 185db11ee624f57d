package news

import "github.com/gin-gonic/gin"

// RegisterPublicRoutes registers public news routes
func RegisterPublicRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/news", handler.ListPublished)
	r.GET("/news/:slug", handler.GetBySlug)
}

// RegisterAdminRoutes registers admin news routes
func RegisterAdminRoutes(r *gin.RouterGroup, handler *Handler) {
	news := r.Group("/news")
	{
		news.GET("", handler.List)
		news.GET("/:id", handler.Get)
		news.POST("", handler.Create)
		news.PATCH("/:id", handler.Update)
		news.DELETE("/:id", handler.Delete)
	}
}
