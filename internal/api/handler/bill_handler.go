package handler

import (
	"log/slog"
	"strconv"

	"github.com/advance-ledger/internal/api/service"
	"github.com/advance-ledger/internal/domain/shared"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// BillHandler handles HTTP requests for bill operations
type BillHandler struct {
	billService service.BillService
	logger      *slog.Logger
}

// NewBillHandler creates a new bill handler
func NewBillHandler(logger *slog.Logger, billService service.BillService) *BillHandler {
	return &BillHandler{
		billService: billService,
		logger:      logger,
	}
}

// Create records a new advanced payment
func (h *BillHandler) Create(c *gin.Context) {
	var req CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", "error", err)
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	amount, ok := parseAmount(c, req.AmountTotal)
	if !ok {
		return
	}

	b, err := h.billService.CreateBill(c.Request.Context(), req.Title, amount, shared.Category(req.Category), req.Remark)
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}

	RespondCreated(c, mapBillToResponse(b))
}

// GetByID retrieves a bill by its ID, returning 404 if not found
func (h *BillHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	b, err := h.billService.GetBillByID(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}

	RespondOK(c, mapBillToResponse(b))
}

// List returns bills newest-first; unsettled_only excludes settled bills
func (h *BillHandler) List(c *gin.Context) {
	var params ListBillsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		RespondBadRequest(c, "Invalid query parameters: "+err.Error())
		return
	}

	bills, err := h.billService.ListBills(c.Request.Context(), params.Limit, params.Offset, params.UnsettledOnly)
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}

	responses := make([]BillResponse, 0, len(bills))
	for _, b := range bills {
		responses = append(responses, mapBillToResponse(b))
	}
	RespondOK(c, responses)
}

// Update edits a bill's title, total and category
func (h *BillHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", "error", err)
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	amount, ok := parseAmount(c, req.AmountTotal)
	if !ok {
		return
	}

	b, err := h.billService.UpdateBill(c.Request.Context(), id, req.Title, amount, shared.Category(req.Category))
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}

	RespondOK(c, mapBillToResponse(b))
}

// Delete removes a bill that has no settlement history
func (h *BillHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.billService.DeleteBill(c.Request.Context(), id); err != nil {
		respondDomainError(c, h.logger, err)
		return
	}

	RespondNoContent(c)
}

// Settlements returns the settlement audit trail for a bill
func (h *BillHandler) Settlements(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	settlements, err := h.billService.GetBillSettlements(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}

	responses := make([]SettlementResponse, 0, len(settlements))
	for _, s := range settlements {
		responses = append(responses, mapSettlementToResponse(s))
	}
	RespondOK(c, responses)
}

// parseID reads the :id path parameter; on failure it writes the error response
func parseID(c *gin.Context) (int64, bool) {
	idParam := c.Param("id")
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil || id <= 0 {
		RespondBadRequest(c, "Invalid ID: "+idParam)
		return 0, false
	}
	return id, true
}

// parseAmount parses a decimal string exactly; on failure it writes the error response
func parseAmount(c *gin.Context, raw string) (decimal.Decimal, bool) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		RespondBadRequest(c, "Invalid amount: "+raw)
		return decimal.Zero, false
	}
	if !amount.IsPositive() {
		RespondBadRequest(c, "Amount must be a positive decimal")
		return decimal.Zero, false
	}
	return amount, true
}
