package bill

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// Repository defines bill persistence operations
type Repository interface {
	Create(ctx context.Context, b *Bill) error
	GetByID(ctx context.Context, id int64) (*Bill, error)

	// List returns bills newest-first. When unsettledOnly is set, fully
	// settled bills are excluded.
	List(ctx context.Context, limit, offset int, unsettledOnly bool) ([]*Bill, error)
	ListAll(ctx context.Context) ([]*Bill, error)

	// Update persists the bill using its version for optimistic locking
	Update(ctx context.Context, b *Bill) error
	Delete(ctx context.Context, id int64) error

	// LockForUpdate acquires a row-level exclusive lock for settlement
	LockForUpdate(ctx context.Context, id int64) (*Bill, error)
	WithTx(tx pgx.Tx) Repository
}

// ErrBillNotFound indicates a missing bill
type ErrBillNotFound struct {
	BillID int64
}

func (e ErrBillNotFound) Error() string {
	return fmt.Sprintf("bill not found: %d", e.BillID)
}

// ErrConcurrentModification indicates the bill row changed between read and write
type ErrConcurrentModification struct {
	BillID int64
}

func (e ErrConcurrentModification) Error() string {
	return fmt.Sprintf("concurrent modification detected for bill: %d", e.BillID)
}

// ErrOverSettlement indicates a settlement amount exceeding the remaining debt
type ErrOverSettlement struct {
	RemainingDebt decimal.Decimal
	Requested     decimal.Decimal
}

func (e ErrOverSettlement) Error() string {
	return fmt.Sprintf("over-settlement: bill only owes %s, requested %s", e.RemainingDebt, e.Requested)
}

// ErrInvalidState indicates an update that would violate a bill invariant
type ErrInvalidState struct {
	Reason string
}

func (e ErrInvalidState) Error() string {
	return "invalid bill state: " + e.Reason
}

// ErrBillHasSettlements indicates a deletion attempt on a bill with history.
// Deleting would break the settlement sum invariant, so it is forbidden.
type ErrBillHasSettlements struct {
	BillID      int64
	Settlements int64
}

func (e ErrBillHasSettlements) Error() string {
	return fmt.Sprintf("bill %d has %d settlement record(s) and cannot be deleted", e.BillID, e.Settlements)
}
