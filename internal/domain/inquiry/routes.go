package inquiry

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the contact routes. There is deliberately no
// update or delete route.
func RegisterRoutes(public, admin *gin.RouterGroup, h *Handler) {
	public.POST("/contact", h.Submit)
	admin.GET("/contact", h.List)
}
