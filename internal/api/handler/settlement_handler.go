package handler

import (
	"log/slog"

	"github.com/advance-ledger/internal/api/service"
	"github.com/gin-gonic/gin"
)

// SettlementHandler handles HTTP requests for applying settlements
type SettlementHandler struct {
	settlementService service.SettlementService
	logger            *slog.Logger
}

// NewSettlementHandler creates a new settlement handler
func NewSettlementHandler(logger *slog.Logger, settlementService service.SettlementService) *SettlementHandler {
	return &SettlementHandler{
		settlementService: settlementService,
		logger:            logger,
	}
}

// Apply moves funds from a funding record onto a bill and returns all three
// updated entities
func (h *SettlementHandler) Apply(c *gin.Context) {
	var req ApplySettlementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", "error", err)
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	amount, ok := parseAmount(c, req.Amount)
	if !ok {
		return
	}

	result, err := h.settlementService.ApplySettlement(c.Request.Context(), req.BillID, req.FundingID, amount)
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}

	RespondCreated(c, mapSettlementResultToResponse(result))
}
