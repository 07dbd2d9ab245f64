// Package settlement holds the append-only audit record written whenever
// funds are applied to a bill. Records are created inside the settlement
// transaction and never mutated or deleted afterwards, so for any bill the
// sum of its settlement amounts equals the bill's settled balance, and for
// any funding record the sum equals its allocated balance.
package settlement

import (
	"time"

	"github.com/advance-ledger/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Settlement records that an amount from one funding record was applied to
// one bill at a point in time.
type Settlement struct {
	ID        int64           `json:"id"`
	BillID    int64           `json:"bill_id"`
	FundingID int64           `json:"funding_id"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}

// New creates a settlement record linking a bill and a funding record
func New(billID, fundingID int64, amount decimal.Decimal) (*Settlement, error) {
	if !amount.IsPositive() {
		return nil, shared.ErrInvalidAmount
	}

	return &Settlement{
		BillID:    billID,
		FundingID: fundingID,
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
	}, nil
}
