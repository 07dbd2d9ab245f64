package handler

import (
	"errors"
	"log/slog"

	"github.com/advance-ledger/internal/domain/bill"
	"github.com/advance-ledger/internal/domain/funding"
	"github.com/advance-ledger/internal/domain/settlement"
	"github.com/advance-ledger/internal/domain/shared"
	"github.com/gin-gonic/gin"
)

// respondDomainError maps a domain error to its HTTP representation.
// Validation failures carry the actual vs requested amounts so the client can
// render a precise message; storage failures stay opaque.
func respondDomainError(c *gin.Context, logger *slog.Logger, err error) {
	var (
		billNotFound       bill.ErrBillNotFound
		fundingNotFound    funding.ErrRecordNotFound
		settlementNotFound settlement.ErrSettlementNotFound
		insufficientFunds  funding.ErrInsufficientFunds
		overSettlement     bill.ErrOverSettlement
		invalidState       bill.ErrInvalidState
		hasSettlements     bill.ErrBillHasSettlements
		billConflict       bill.ErrConcurrentModification
		fundingConflict    funding.ErrConcurrentModification
	)

	switch {
	case errors.As(err, &billNotFound):
		RespondNotFound(c, "Bill not found")
	case errors.As(err, &fundingNotFound):
		RespondNotFound(c, "Funding record not found")
	case errors.As(err, &settlementNotFound):
		RespondNotFound(c, "Settlement record not found")
	case errors.Is(err, shared.ErrInvalidAmount):
		RespondBadRequest(c, "Amount must be a positive decimal")
	case errors.Is(err, bill.ErrEmptyTitle), errors.Is(err, bill.ErrInvalidCategory), errors.Is(err, funding.ErrInvalidSource):
		RespondBadRequest(c, err.Error())
	case errors.As(err, &insufficientFunds):
		RespondUnprocessable(c, "INSUFFICIENT_FUNDS", insufficientFunds.Error())
	case errors.As(err, &overSettlement):
		RespondUnprocessable(c, "OVER_SETTLEMENT", overSettlement.Error())
	case errors.As(err, &invalidState):
		RespondUnprocessable(c, "INVALID_STATE", invalidState.Error())
	case errors.As(err, &hasSettlements):
		RespondConflict(c, "BILL_HAS_SETTLEMENTS", hasSettlements.Error())
	case errors.As(err, &billConflict), errors.As(err, &fundingConflict):
		RespondConflict(c, "CONFLICT", "Concurrent modification detected, please retry")
	default:
		logger.Error("Unhandled domain error", "error", err)
		RespondInternalError(c)
	}
}
