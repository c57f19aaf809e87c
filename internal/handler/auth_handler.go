package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/izmirulasim/talep-takip-api/internal/service"
	appErrors "github.com/izmirulasim/talep-takip-api/pkg/errors"
	"github.com/izmirulasim/talep-takip-api/pkg/response"
)

// AuthHandler handles login.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// Login godoc
// @Summary Login
// @Description Verify credentials and return the user descriptor
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body service.GirisIstek true "Credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.GirisIstek
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Kullanıcı adı ve şifre gereklidir"))
		return
	}

	user, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"success": true, "user": user})
}
