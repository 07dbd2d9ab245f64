package handler

import (
	"log/slog"

	"github.com/advance-ledger/internal/api/service"
	"github.com/gin-gonic/gin"
)

// DashboardHandler handles HTTP requests for the aggregate dashboard
type DashboardHandler struct {
	dashboardService service.DashboardService
	logger           *slog.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(logger *slog.Logger, dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// Get computes and returns the dashboard summary
func (h *DashboardHandler) Get(c *gin.Context) {
	summary, err := h.dashboardService.GetSummary(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to compute dashboard summary", "error", err)
		RespondInternalError(c)
		return
	}

	RespondOK(c, summary)
}
