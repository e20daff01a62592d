package admin

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pammu-27/sparsha-backend/internal/pkg/response"
)

type AuthHandler struct {
	service *Service
}

func NewAuthHandler(service *Service) *AuthHandler {
	return &AuthHandler{service: service}
}

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Login godoc
// @Summary Admin Login
// @Description Exchange the admin password for a bearer token
// @Tags Admin Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Password"
// @Success 200 {object} LoginResponse
// @Failure 400,401 {object} map[string]interface{}
// @Router /admin/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, exp, err := h.service.Login(c.Request.Context(), req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			slog.Warn("admin login failed", "client_ip", c.ClientIP())
			response.Error(c, http.StatusUnauthorized, "Invalid password")
			return
		}
		slog.Error("admin login", "error", err)
		response.Error(c, http.StatusInternalServerError, "Login failed")
		return
	}

	response.OK(c, http.StatusOK, LoginResponse{Token: token, ExpiresAt: exp})
}
