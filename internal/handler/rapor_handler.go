package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/izmirulasim/talep-takip-api/internal/models"
	"github.com/izmirulasim/talep-takip-api/internal/service"
	appErrors "github.com/izmirulasim/talep-takip-api/pkg/errors"
	"github.com/izmirulasim/talep-takip-api/pkg/response"
)

// RaporHandler handles report generation and export endpoints.
type RaporHandler struct {
	rapor  *service.RaporService
	export *service.ExportService
}

// NewRaporHandler creates a new report handler.
func NewRaporHandler(rapor *service.RaporService, export *service.ExportService) *RaporHandler {
	return &RaporHandler{rapor: rapor, export: export}
}

// Generate godoc
// @Summary Activity report
// @Description New records and status changes within the date range
// @Tags Rapor
// @Accept json
// @Produce json
// @Param payload body models.RaporIstek true "Inclusive date range"
// @Success 200 {object} models.RaporSonucu
// @Failure 400 {object} map[string]string
// @Router /talepler/rapor [post]
func (h *RaporHandler) Generate(c *gin.Context) {
	var req models.RaporIstek
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Başlangıç ve bitiş tarihi gereklidir"))
		return
	}

	rapor, err := h.rapor.Generate(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, rapor)
}

type exportIstek struct {
	models.RaporIstek
	Format string `json:"format"`
}

// Export godoc
// @Summary Export report
// @Description Render the report as a CSV or PDF download
// @Tags Rapor
// @Accept json
// @Produce text/csv
// @Produce application/pdf
// @Param payload body exportIstek true "Date range and format"
// @Success 200 {file} file
// @Failure 400 {object} map[string]string
// @Router /talepler/rapor/export [post]
func (h *RaporHandler) Export(c *gin.Context) {
	var req exportIstek
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Başlangıç ve bitiş tarihi gereklidir"))
		return
	}

	rapor, err := h.rapor.Generate(c.Request.Context(), req.RaporIstek)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.export.Render(rapor, req.RaporIstek, req.Format)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, result.ContentType, result.Payload)
}
