package subcompany

import "github.com/gin-gonic/gin"

// RegisterPublicRoutes registers public sub-company routes
func RegisterPublicRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/sub-companies", handler.List)
	r.GET("/sub-companies/:slug", handler.Resolve)
}

// RegisterAdminRoutes registers admin sub-company routes
func RegisterAdminRoutes(r *gin.RouterGroup, handler *Handler) {
	subs := r.Group("/sub-companies")
	{
		subs.GET("", handler.List)
		subs.GET("/:id", handler.Get)
		subs.POST("", handler.Create)
		subs.PATCH("/:id", handler.Update)
		subs.DELETE("/:id", handler.Delete)
	}
}
