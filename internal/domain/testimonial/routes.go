package testimonial

import "github.com/gin-gonic/gin"

func RegisterRoutes(public, admin *gin.RouterGroup, h *Handler) {
	public.POST("/testimonial", h.Create)
	public.GET("/testimonials", h.List)

	admin.PUT("/testimonial/:id", h.Update)
	admin.DELETE("/testimonial/:id", h.Delete)
}
