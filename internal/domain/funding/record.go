package funding

import (
	"time"

	"github.com/advance-ledger/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Record represents a pool of money received, available for allocation
// against outstanding bills.
type Record struct {
	ID           int64           `json:"id"`
	AmountTotal  decimal.Decimal `json:"amount_total"`
	AmountUnused decimal.Decimal `json:"amount_unused"`
	Source       shared.Source   `json:"source"`
	Period       string          `json:"period,omitempty"` // e.g. "2026-08"
	Remark       string          `json:"remark,omitempty"`
	Version      int             `json:"version"` // For optimistic locking
	ReceivedDate time.Time       `json:"received_date"`
	CreatedAt    time.Time       `json:"created_at"`
}

// NewRecord creates a funding record. The unused balance starts equal to the
// total since nothing has been allocated yet.
func NewRecord(amountTotal decimal.Decimal, source shared.Source, period, remark string, receivedDate time.Time) (*Record, error) {
	if !amountTotal.IsPositive() {
		return nil, shared.ErrInvalidAmount
	}
	if !source.Valid() {
		return nil, ErrInvalidSource
	}

	now := time.Now().UTC()
	if receivedDate.IsZero() {
		receivedDate = now
	}

	return &Record{
		AmountTotal:  amountTotal,
		AmountUnused: amountTotal,
		Source:       source,
		Period:       period,
		Remark:       remark,
		Version:      1,
		ReceivedDate: receivedDate.UTC(),
		CreatedAt:    now,
	}, nil
}

// AmountUsed returns how much of the pool has been allocated so far
func (r *Record) AmountUsed() decimal.Decimal {
	return r.AmountTotal.Sub(r.AmountUnused)
}

// Allocate subtracts the specified amount from the unused balance
func (r *Record) Allocate(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return shared.ErrInvalidAmount
	}
	if r.AmountUnused.LessThan(amount) {
		return ErrInsufficientFunds{Available: r.AmountUnused, Requested: amount}
	}

	r.AmountUnused = r.AmountUnused.Sub(amount)
	r.Version++
	return nil
}
