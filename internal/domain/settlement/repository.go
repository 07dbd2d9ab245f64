package settlement

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Repository manages settlement record persistence. Records are append-only:
// there are no update or delete operations.
type Repository interface {
	Create(ctx context.Context, s *Settlement) error
	GetByID(ctx context.Context, id int64) (*Settlement, error)
	ListByBillID(ctx context.Context, billID int64) ([]*Settlement, error)
	ListByFundingID(ctx context.Context, fundingID int64) ([]*Settlement, error)
	CountByBillID(ctx context.Context, billID int64) (int64, error)
	WithTx(tx pgx.Tx) Repository
}

// ErrSettlementNotFound indicates a missing settlement record
type ErrSettlementNotFound struct {
	SettlementID int64
}

func (e ErrSettlementNotFound) Error() string {
	return fmt.Sprintf("settlement record not found: %d", e.SettlementID)
}
