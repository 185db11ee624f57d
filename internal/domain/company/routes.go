package company

import "github.com/gin-gonic/gin"

// RegisterPublicRoutes registers public company routes
func RegisterPublicRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/company-profile", handler.GetProfile)
	r.GET("/pages/:name", handler.GetPage)
}

// RegisterAdminRoutes registers admin settings routes
func RegisterAdminRoutes(r *gin.RouterGroup, handler *Handler) {
	settings := r.Group("/settings")
	{
		settings.GET("/profile", handler.GetProfile)
		settings.PATCH("/profile", handler.UpdateProfile)
		settings.GET("/pages/:name", handler.GetPage)
		settings.PATCH("/pages/:name", handler.UpdatePage)
	}
}
