package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/izmirulasim/talep-takip-api/internal/models"
	"github.com/izmirulasim/talep-takip-api/internal/service"
	appErrors "github.com/izmirulasim/talep-takip-api/pkg/errors"
	"github.com/izmirulasim/talep-takip-api/pkg/response"
)

// KullaniciHandler handles account CRUD endpoints.
type KullaniciHandler struct {
	service *service.KullaniciService
}

// NewKullaniciHandler creates a new account handler.
func NewKullaniciHandler(svc *service.KullaniciService) *KullaniciHandler {
	return &KullaniciHandler{service: svc}
}

// List godoc
// @Summary List users
// @Tags Kullanicilar
// @Produce json
// @Success 200 {array} models.Kullanici
// @Router /kullanicilar [get]
func (h *KullaniciHandler) List(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, users)
}

// Create godoc
// @Summary Create user
// @Tags Kullanicilar
// @Accept json
// @Produce json
// @Param payload body service.CreateKullaniciIstek true "New user"
// @Success 200 {object} models.Kullanici
// @Failure 400 {object} map[string]string
// @Router /kullanicilar [post]
func (h *KullaniciHandler) Create(c *gin.Context) {
	var req service.CreateKullaniciIstek
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Kullanıcı adı ve şifre gereklidir"))
		return
	}

	user, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, user)
}

// Update godoc
// @Summary Update user
// @Tags Kullanicilar
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param payload body models.KullaniciUpdate true "Changed fields"
// @Success 200 {object} models.Kullanici
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /kullanicilar/{id} [put]
func (h *KullaniciHandler) Update(c *gin.Context) {
	var req models.KullaniciUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Geçersiz istek gövdesi"))
		return
	}

	user, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, user)
}

// Delete godoc
// @Summary Delete user
// @Tags Kullanicilar
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /kullanicilar/{id} [delete]
func (h *KullaniciHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c)
}
