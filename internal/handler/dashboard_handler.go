package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/izmirulasim/talep-takip-api/internal/service"
	"github.com/izmirulasim/talep-takip-api/pkg/response"
)

// DashboardHandler serves the overview aggregation.
type DashboardHandler struct {
	service *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(svc *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: svc}
}

// Ozet godoc
// @Summary Dashboard summary
// @Description Totals and counts grouped by status, operator, region and district
// @Tags Dashboard
// @Produce json
// @Success 200 {object} models.DashboardOzeti
// @Router /dashboard/ozet [get]
func (h *DashboardHandler) Ozet(c *gin.Context) {
	ozet, err := h.service.Ozet(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, ozet)
}
