package bill

import (
	"errors"
	"fmt"
	"time"

	"github.com/advance-ledger/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Common errors
var (
	ErrEmptyTitle      = errors.New("bill title cannot be empty")
	ErrInvalidCategory = errors.New("bill category is not a known value")
)

// Status is the lifecycle state of a bill. It is always derived from the
// monetary fields, never stored independently of a recompute.
type Status string

const (
	StatusPending          Status = "pending"
	StatusPartiallySettled Status = "partially_settled"
	StatusSettled          Status = "settled"
)

// DeriveStatus computes the lifecycle state from the two monetary fields.
// It is a pure function: re-deriving from the same pair is idempotent.
func DeriveStatus(amountTotal, amountSettled decimal.Decimal) Status {
	switch {
	case amountSettled.IsZero():
		return StatusPending
	case amountSettled.LessThan(amountTotal):
		return StatusPartiallySettled
	default:
		return StatusSettled
	}
}

// Bill represents money advanced on another party's behalf, a debt owed
// back to the ledger owner.
type Bill struct {
	ID            int64           `json:"id"`
	Title         string          `json:"title"`
	Category      shared.Category `json:"category"`
	AmountTotal   decimal.Decimal `json:"amount_total"`
	AmountSettled decimal.Decimal `json:"amount_settled"`
	Status        Status          `json:"status"`
	Remark        string          `json:"remark,omitempty"`
	Version       int             `json:"version"` // For optimistic locking
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// NewBill creates a new unsettled bill with the given parameters
func NewBill(title string, amountTotal decimal.Decimal, category shared.Category, remark string) (*Bill, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if !category.Valid() {
		return nil, ErrInvalidCategory
	}
	if !amountTotal.IsPositive() {
		return nil, shared.ErrInvalidAmount
	}

	now := time.Now().UTC()
	return &Bill{
		Title:         title,
		Category:      category,
		AmountTotal:   amountTotal,
		AmountSettled: decimal.Zero,
		Status:        StatusPending,
		Remark:        remark,
		Version:       1,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// RemainingDebt returns how much of the bill is still unsettled
func (b *Bill) RemainingDebt() decimal.Decimal {
	return b.AmountTotal.Sub(b.AmountSettled)
}

// ApplySettlement adds the specified amount to the settled balance and
// re-derives the status. The amount must not exceed the remaining debt.
func (b *Bill) ApplySettlement(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return shared.ErrInvalidAmount
	}
	if remaining := b.RemainingDebt(); amount.GreaterThan(remaining) {
		return ErrOverSettlement{RemainingDebt: remaining, Requested: amount}
	}

	b.AmountSettled = b.AmountSettled.Add(amount)
	b.Status = DeriveStatus(b.AmountTotal, b.AmountSettled)
	b.UpdatedAt = time.Now().UTC()
	b.Version++
	return nil
}

// Edit replaces the bill's editable fields and re-derives the status.
// Lowering the total below the already settled amount is rejected, never
// silently clamped.
func (b *Bill) Edit(title string, amountTotal decimal.Decimal, category shared.Category) error {
	if title == "" {
		return ErrEmptyTitle
	}
	if !category.Valid() {
		return ErrInvalidCategory
	}
	if !amountTotal.IsPositive() {
		return shared.ErrInvalidAmount
	}
	if amountTotal.LessThan(b.AmountSettled) {
		return ErrInvalidState{
			Reason: fmt.Sprintf("new total %s is below settled amount %s", amountTotal, b.AmountSettled),
		}
	}

	b.Title = title
	b.AmountTotal = amountTotal
	b.Category = category
	b.Status = DeriveStatus(b.AmountTotal, b.AmountSettled)
	b.UpdatedAt = time.Now().UTC()
	b.Version++
	return nil
}
