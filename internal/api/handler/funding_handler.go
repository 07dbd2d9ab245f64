package handler

import (
	"log/slog"
	"time"

	"github.com/advance-ledger/internal/api/service"
	"github.com/advance-ledger/internal/domain/shared"
	"github.com/gin-gonic/gin"
)

// FundingHandler handles HTTP requests for funding record operations
type FundingHandler struct {
	fundingService service.FundingService
	logger         *slog.Logger
}

// NewFundingHandler creates a new funding record handler
func NewFundingHandler(logger *slog.Logger, fundingService service.FundingService) *FundingHandler {
	return &FundingHandler{
		fundingService: fundingService,
		logger:         logger,
	}
}

// Create records money received into the pool
func (h *FundingHandler) Create(c *gin.Context) {
	var req CreateFundingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", "error", err)
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	amount, ok := parseAmount(c, req.AmountTotal)
	if !ok {
		return
	}

	var receivedDate time.Time
	if req.ReceivedDate != "" {
		parsed, err := time.Parse(time.RFC3339, req.ReceivedDate)
		if err != nil {
			RespondBadRequest(c, "Invalid received_date, expected RFC 3339: "+req.ReceivedDate)
			return
		}
		receivedDate = parsed
	}

	rec, err := h.fundingService.CreateRecord(c.Request.Context(), amount, shared.Source(req.Source), req.Period, req.Remark, receivedDate)
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}

	RespondCreated(c, mapFundingToResponse(rec))
}

// GetByID retrieves a funding record by its ID, returning 404 if not found
func (h *FundingHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	rec, err := h.fundingService.GetRecordByID(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}

	RespondOK(c, mapFundingToResponse(rec))
}

// List returns funding records newest-first; available_only keeps only
// records that still have an unused balance
func (h *FundingHandler) List(c *gin.Context) {
	var params ListFundingParams
	if err := c.ShouldBindQuery(&params); err != nil {
		RespondBadRequest(c, "Invalid query parameters: "+err.Error())
		return
	}

	records, err := h.fundingService.ListRecords(c.Request.Context(), params.Limit, params.Offset, params.AvailableOnly)
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}

	responses := make([]FundingResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, mapFundingToResponse(rec))
	}
	RespondOK(c, responses)
}
