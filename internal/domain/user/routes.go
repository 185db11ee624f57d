package user

import (
	"github.com/gin-gonic/gin"

	"corpsite/internal/middleware"
)

// RegisterPublicRoutes registers the login route
func RegisterPublicRoutes(r *gin.RouterGroup, handler *Handler) {
	r.POST("/auth/login", handler.Login)
}

// RegisterAdminRoutes registers account management routes; account
// management itself is admin-only.
func RegisterAdminRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/me", handler.Me)

	users := r.Group("/users")
	users.Use(middleware.AdminOnly())
	{
		users.GET("", handler.List)
		users.POST("", handler.Create)
		users.PATCH("/:id", handler.Update)
		users.DELETE("/:id", handler.Delete)
	}
}
