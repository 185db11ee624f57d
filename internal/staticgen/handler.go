package staticgen

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"corpsite/internal/pkg/response"
)

// Handler exposes the adapter to the frontend build over HTTP. Every
// endpoint answers 200; missing entities are signalled in the payload so the
// build tooling needs no status-code handling.
type Handler struct {
	adapter *Adapter
}

// NewHandler creates static generation handler
func NewHandler(adapter *Adapter) *Handler {
	return &Handler{adapter: adapter}
}

func (h *Handler) SubCompanyPaths(c *gin.Context) {
	response.Success(c, http.StatusOK, h.adapter.SubCompanyPaths(c.Request.Context()))
}

func (h *Handler) SubCompanyProps(c *gin.Context) {
	response.Success(c, http.StatusOK, h.adapter.SubCompanyProps(c.Request.Context(), c.Param("slug")))
}

func (h *Handler) GalleryPaths(c *gin.Context) {
	response.Success(c, http.StatusOK, h.adapter.GalleryPaths(c.Request.Context()))
}

func (h *Handler) GalleryProps(c *gin.Context) {
	response.Success(c, http.StatusOK, h.adapter.GalleryProps(c.Request.Context(), c.Param("id")))
}

func (h *Handler) NewsPaths(c *gin.Context) {
	response.Success(c, http.StatusOK, h.adapter.NewsPaths(c.Request.Context()))
}

func (h *Handler) NewsProps(c *gin.Context) {
	response.Success(c, http.StatusOK, h.adapter.NewsProps(c.Request.Context(), c.Param("slug")))
}
