package benefit

import "github.com/gin-gonic/gin"

// RegisterPublicRoutes registers public benefit routes
func RegisterPublicRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/benefits", handler.List)
}

// RegisterAdminRoutes registers admin benefit routes
func RegisterAdminRoutes(r *gin.RouterGroup, handler *Handler) {
	benefits := r.Group("/benefits")
	{
		benefits.GET("", handler.List)
		benefits.GET("/:id", handler.Get)
		benefits.POST("", handler.Create)
		benefits.PATCH("/:id", handler.Update)
		benefits.DELETE("/:id", handler.Delete)
	}
}
