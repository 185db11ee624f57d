package sitedata

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the hydration aggregate routes
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	site := r.Group("/site")
	{
		site.GET("/layout", handler.Layout)
		site.GET("/home", handler.Home)
	}
}
