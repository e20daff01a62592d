package testimonial

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pammu-27/sparsha-backend/internal/pkg/params"
	"github.com/pammu-27/sparsha-backend/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Create handles POST /testimonial
// @Summary Submit a testimonial
// @Tags Testimonials
// @Accept json
// @Produce json
// @Param request body CreateTestimonialRequest true "Testimonial"
// @Success 201 {object} Testimonial
// @Failure 400,500 {object} map[string]interface{}
// @Router /testimonial [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	t, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		slog.Error("create testimonial", "error", err)
		response.Error(c, http.StatusInternalServerError, "Failed to create testimonial")
		return
	}
	response.OK(c, http.StatusCreated, t)
}

// List handles GET /testimonials
// @Summary List testimonials, newest first
// @Tags Testimonials
// @Produce json
// @Success 200 {array} Testimonial
// @Router /testimonials [get]
func (h *Handler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		slog.Error("list testimonials", "error", err)
		response.Error(c, http.StatusInternalServerError, "Failed to fetch testimonials")
		return
	}
	response.OK(c, http.StatusOK, items)
}

// Update handles PUT /testimonial/:id
// @Summary Update a testimonial
// @Tags Testimonials
// @Accept json
// @Produce json
// @Param id path int true "Testimonial ID"
// @Param request body UpdateTestimonialRequest true "Fields to change"
// @Success 200 {object} Testimonial
// @Failure 400,404,500 {object} map[string]interface{}
// @Router /testimonial/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		response.Error(c, http.StatusBadRequest, "Invalid id")
		return
	}

	var req UpdateTestimonialRequest
	// an empty body is an update with no fields
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(c, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	t, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrTestimonialNotFound) {
			response.Error(c, http.StatusNotFound, "Testimonial not found")
			return
		}
		slog.Error("update testimonial", "id", id, "error", err)
		response.Error(c, http.StatusInternalServerError, "Failed to update testimonial")
		return
	}
	response.OK(c, http.StatusOK, t)
}

// Delete handles DELETE /testimonial/:id
// @Summary Delete a testimonial
// @Tags Testimonials
// @Produce json
// @Param id path int true "Testimonial ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400,404,500 {object} map[string]interface{}
// @Router /testimonial/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		response.Error(c, http.StatusBadRequest, "Invalid id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrTestimonialNotFound) {
			response.Error(c, http.StatusNotFound, "Testimonial not found")
			return
		}
		slog.Error("delete testimonial", "id", id, "error", err)
		response.Error(c, http.StatusInternalServerError, "Failed to delete testimonial")
		return
	}
	response.Success(c)
}
