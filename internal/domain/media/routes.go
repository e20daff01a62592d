package media

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the gallery read route on public and the
// mutating routes on admin.
func RegisterRoutes(public, admin *gin.RouterGroup, h *Handler) {
	public.GET("/gallery", h.List)

	admin.POST("/upload", h.Upload)
	admin.PUT("/media/:id", h.Update)
	admin.DELETE("/media/:id", h.Delete)
}
