package inquiry

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pammu-27/sparsha-backend/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Submit handles POST /contact (public)
// @Summary Submit a contact inquiry
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body SubmitInquiryRequest true "Inquiry"
// @Success 201 {object} Inquiry
// @Failure 400,500 {object} map[string]interface{}
// @Router /contact [post]
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	i, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		slog.Error("submit inquiry", "error", err)
		response.Error(c, http.StatusInternalServerError, "Failed to submit inquiry")
		return
	}
	response.OK(c, http.StatusCreated, i)
}

// List handles GET /contact
// @Summary List inquiries, newest first
// @Tags Contact
// @Produce json
// @Success 200 {array} Inquiry
// @Router /contact [get]
func (h *Handler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		slog.Error("list inquiries", "error", err)
		response.Error(c, http.StatusInternalServerError, "Failed to fetch inquiries")
		return
	}
	response.OK(c, http.StatusOK, items)
}
