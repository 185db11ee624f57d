package project

import "github.com/gin-gonic/gin"

// RegisterPublicRoutes registers public project routes
func RegisterPublicRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/projects", handler.List)
	r.GET("/projects/:slug", handler.GetBySlug)
}

// RegisterAdminRoutes registers admin project routes
func RegisterAdminRoutes(r *gin.RouterGroup, handler *Handler) {
	projects := r.Group("/projects")
	{
		projects.GET("", handler.List)
		projects.GET("/:id", handler.Get)
		projects.POST("", handler.Create)
		projects.PATCH("/:id", handler.Update)
		projects.DELETE("/:id", handler.Delete)
	}
}
