package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/izmirulasim/talep-takip-api/internal/models"
	"github.com/izmirulasim/talep-takip-api/internal/service"
	appErrors "github.com/izmirulasim/talep-takip-api/pkg/errors"
	"github.com/izmirulasim/talep-takip-api/pkg/response"
)

type dashboardInvalidator interface {
	Invalidate(ctx context.Context)
}

// BulkTalepIstek wraps the imported spreadsheet rows.
type BulkTalepIstek struct {
	Talepler []models.TalepCreate `json:"talepler"`
}

// TalepHandler handles request-record endpoints. Every successful write
// drops the cached dashboard summary so the next read recomputes it.
type TalepHandler struct {
	service   *service.TalepService
	dashboard dashboardInvalidator
}

// NewTalepHandler creates a new request-record handler. dashboard may be
// nil when summary caching is disabled.
func NewTalepHandler(svc *service.TalepService, dashboard dashboardInvalidator) *TalepHandler {
	return &TalepHandler{service: svc, dashboard: dashboard}
}

func (h *TalepHandler) invalidateDashboard(c *gin.Context) {
	if h.dashboard != nil {
		h.dashboard.Invalidate(c.Request.Context())
	}
}

// List godoc
// @Summary List records
// @Tags Talepler
// @Produce json
// @Success 200 {array} models.Talep
// @Router /talepler [get]
func (h *TalepHandler) List(c *gin.Context) {
	talepler, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, talepler)
}

// Create godoc
// @Summary Create record
// @Tags Talepler
// @Accept json
// @Produce json
// @Param payload body models.TalepCreate true "New record"
// @Success 200 {object} models.Talep
// @Failure 400 {object} map[string]string
// @Router /talepler [post]
func (h *TalepHandler) Create(c *gin.Context) {
	var req models.TalepCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Geçersiz istek gövdesi"))
		return
	}

	talep, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.invalidateDashboard(c)
	response.OK(c, talep)
}

// BulkCreate godoc
// @Summary Import records
// @Description Insert a spreadsheet batch in one transaction
// @Tags Talepler
// @Accept json
// @Produce json
// @Param payload body handler.BulkTalepIstek true "Records"
// @Success 200 {array} models.Talep
// @Failure 400 {object} map[string]string
// @Router /talepler/bulk [post]
func (h *TalepHandler) BulkCreate(c *gin.Context) {
	var req BulkTalepIstek
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Geçerli talep listesi gönderilmedi"))
		return
	}

	created, err := h.service.BulkCreate(c.Request.Context(), req.Talepler)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.invalidateDashboard(c)
	response.OK(c, created)
}

// Update godoc
// @Summary Update record
// @Description Apply changed fields and append their audit entries
// @Tags Talepler
// @Accept json
// @Produce json
// @Param id path string true "Record ID"
// @Param payload body models.TalepUpdate true "Changed fields"
// @Success 200 {object} models.Talep
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /talepler/{id} [put]
func (h *TalepHandler) Update(c *gin.Context) {
	var req models.TalepUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Geçersiz istek gövdesi"))
		return
	}

	talep, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.invalidateDashboard(c)
	response.OK(c, talep)
}

// Delete godoc
// @Summary Delete record
// @Tags Talepler
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} map[string]string
// @Router /talepler/{id} [delete]
func (h *TalepHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	h.invalidateDashboard(c)
	response.Success(c)
}

// Logs godoc
// @Summary Record history
// @Tags Talepler
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {array} models.TalepLog
// @Router /talepler/{id}/logs [get]
func (h *TalepHandler) Logs(c *gin.Context) {
	logs, err := h.service.Logs(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, logs)
}
