package funding

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// ErrInvalidSource indicates a funding source outside the known set
var ErrInvalidSource = errors.New("funding source is not a known value")

// Repository defines funding record persistence operations
type Repository interface {
	Create(ctx context.Context, r *Record) error
	GetByID(ctx context.Context, id int64) (*Record, error)

	// List returns records newest-first. When availableOnly is set, fully
	// allocated records are excluded.
	List(ctx context.Context, limit, offset int, availableOnly bool) ([]*Record, error)
	ListAll(ctx context.Context) ([]*Record, error)

	// Update persists the record using its version for optimistic locking
	Update(ctx context.Context, r *Record) error

	// LockForUpdate acquires a row-level exclusive lock for settlement
	LockForUpdate(ctx context.Context, id int64) (*Record, error)
	WithTx(tx pgx.Tx) Repository
}

// ErrRecordNotFound indicates a missing funding record
type ErrRecordNotFound struct {
	RecordID int64
}

func (e ErrRecordNotFound) Error() string {
	return fmt.Sprintf("funding record not found: %d", e.RecordID)
}

// ErrConcurrentModification indicates the record row changed between read and write
type ErrConcurrentModification struct {
	RecordID int64
}

func (e ErrConcurrentModification) Error() string {
	return fmt.Sprintf("concurrent modification detected for funding record: %d", e.RecordID)
}

// ErrInsufficientFunds indicates an allocation exceeding the unused balance
type ErrInsufficientFunds struct {
	Available decimal.Decimal
	Requested decimal.Decimal
}

func (e ErrInsufficientFunds) Error() string {
	return fmt.Sprintf("insufficient funds: only %s unused, requested %s", e.Available, e.Requested)
}
