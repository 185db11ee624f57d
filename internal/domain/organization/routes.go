package organization

import "github.com/gin-gonic/gin"

// RegisterPublicRoutes registers public organization routes
func RegisterPublicRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/organization", handler.List)
}

// RegisterAdminRoutes registers admin organization routes
func RegisterAdminRoutes(r *gin.RouterGroup, handler *Handler) {
	members := r.Group("/organizations")
	{
		members.GET("", handler.List)
		members.GET("/:id", handler.Get)
		members.POST("", handler.Create)
		members.PATCH("/:id", handler.Update)
		members.DELETE("/:id", handler.Delete)
	}
}
