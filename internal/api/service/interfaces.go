package service

import (
	"context"
	"time"

	"github.com/advance-ledger/internal/domain/bill"
	"github.com/advance-ledger/internal/domain/funding"
	"github.com/advance-ledger/internal/domain/report"
	"github.com/advance-ledger/internal/domain/settlement"
	"github.com/advance-ledger/internal/domain/shared"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// TxRunner executes a function inside a database transaction, rolling back
// on error or panic. Satisfied by *persistence.PostgresDB.
type TxRunner interface {
	ExecuteTx(ctx context.Context, fn func(tx pgx.Tx) error) error
}

// BillService defines the interface for bill operations
type BillService interface {
	// CreateBill records money advanced on another party's behalf
	CreateBill(ctx context.Context, title string, amountTotal decimal.Decimal, category shared.Category, remark string) (*bill.Bill, error)

	// GetBillByID retrieves a bill by its ID
	// Returns ErrBillNotFound if the bill doesn't exist
	GetBillByID(ctx context.Context, id int64) (*bill.Bill, error)

	// ListBills returns bills newest-first with pagination
	ListBills(ctx context.Context, limit, offset int, unsettledOnly bool) ([]*bill.Bill, error)

	// UpdateBill edits a bill's title, total and category, re-deriving the
	// status. Returns ErrInvalidState if the new total is below the amount
	// already settled.
	UpdateBill(ctx context.Context, id int64, title string, amountTotal decimal.Decimal, category shared.Category) (*bill.Bill, error)

	// DeleteBill removes a bill that has no settlement history
	// Returns ErrBillHasSettlements once any settlement exists
	DeleteBill(ctx context.Context, id int64) error

	// GetBillSettlements returns the settlement audit trail for a bill
	GetBillSettlements(ctx context.Context, id int64) ([]*settlement.Settlement, error)
}

// FundingService defines the interface for funding record operations
type FundingService interface {
	// CreateRecord records money received into the pool. A zero receivedDate
	// defaults to the current time.
	CreateRecord(ctx context.Context, amountTotal decimal.Decimal, source shared.Source, period, remark string, receivedDate time.Time) (*funding.Record, error)

	// GetRecordByID retrieves a funding record by its ID
	// Returns ErrRecordNotFound if the record doesn't exist
	GetRecordByID(ctx context.Context, id int64) (*funding.Record, error)

	// ListRecords returns funding records newest-first with pagination
	ListRecords(ctx context.Context, limit, offset int, availableOnly bool) ([]*funding.Record, error)
}

// SettlementResult carries the three entities touched by one settlement
type SettlementResult struct {
	Bill       *bill.Bill
	Funding    *funding.Record
	Settlement *settlement.Settlement
}

// SettlementService applies funds from a funding record to a bill
type SettlementService interface {
	// ApplySettlement atomically moves amount from the funding record's
	// unused balance onto the bill's settled balance and appends a
	// settlement record. A failed validation leaves nothing mutated.
	ApplySettlement(ctx context.Context, billID, fundingID int64, amount decimal.Decimal) (*SettlementResult, error)
}

// DashboardService computes the aggregate financial-health metrics
type DashboardService interface {
	// GetSummary aggregates over the full entity set. An empty ledger
	// yields all-zero sums.
	GetSummary(ctx context.Context) (report.Summary, error)
}
