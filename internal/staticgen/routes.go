package staticgen

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the build-time data routes
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	static := r.Group("/static")
	{
		static.GET("/sub-companies/paths", handler.SubCompanyPaths)
		static.GET("/sub-companies/:slug/props", handler.SubCompanyProps)
		static.GET("/gallery/paths", handler.GalleryPaths)
		static.GET("/gallery/:id/props", handler.GalleryProps)
		static.GET("/news/paths", handler.NewsPaths)
		static.GET("/news/:slug/props", handler.NewsProps)
	}
}
