package service

import (
	"context"
	"log/slog"

	"github.com/advance-ledger/internal/domain/bill"
	"github.com/advance-ledger/internal/domain/settlement"
	"github.com/advance-ledger/internal/domain/shared"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// BillServiceImpl implements the BillService interface
type BillServiceImpl struct {
	db             TxRunner
	billRepo       bill.Repository
	settlementRepo settlement.Repository
	logger         *slog.Logger
}

// NewBillService creates a new bill service
func NewBillService(db TxRunner, billRepo bill.Repository, settlementRepo settlement.Repository, logger *slog.Logger) BillService {
	return &BillServiceImpl{
		db:             db,
		billRepo:       billRepo,
		settlementRepo: settlementRepo,
		logger:         logger,
	}
}

// CreateBill records a new debt owed to the ledger owner
func (s *BillServiceImpl) CreateBill(ctx context.Context, title string, amountTotal decimal.Decimal, category shared.Category, remark string) (*bill.Bill, error) {
	b, err := bill.NewBill(title, amountTotal, category, remark)
	if err != nil {
		return nil, err
	}

	if err := s.billRepo.Create(ctx, b); err != nil {
		return nil, err
	}

	s.logger.Info("Bill created", "bill_id", b.ID, "amount_total", b.AmountTotal, "category", b.Category)
	return b, nil
}

// GetBillByID retrieves a bill by its ID
func (s *BillServiceImpl) GetBillByID(ctx context.Context, id int64) (*bill.Bill, error) {
	return s.billRepo.GetByID(ctx, id)
}

// ListBills returns bills newest-first with pagination
func (s *BillServiceImpl) ListBills(ctx context.Context, limit, offset int, unsettledOnly bool) ([]*bill.Bill, error) {
	return s.billRepo.List(ctx, limit, offset, unsettledOnly)
}

// UpdateBill edits a bill and re-derives its status. The write is guarded by
// the bill's version, so a settlement landing between read and write
// surfaces as ErrConcurrentModification rather than clobbering the settled
// balance.
func (s *BillServiceImpl) UpdateBill(ctx context.Context, id int64, title string, amountTotal decimal.Decimal, category shared.Category) (*bill.Bill, error) {
	b, err := s.billRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := b.Edit(title, amountTotal, category); err != nil {
		return nil, err
	}

	if err := s.billRepo.Update(ctx, b); err != nil {
		return nil, err
	}

	s.logger.Info("Bill updated", "bill_id", b.ID, "amount_total", b.AmountTotal, "status", b.Status)
	return b, nil
}

// DeleteBill removes a bill, but only while it has no settlement history.
// The check and the delete run in one transaction under a row lock; the
// schema's RESTRICT foreign key backs the same rule.
func (s *BillServiceImpl) DeleteBill(ctx context.Context, id int64) error {
	err := s.db.ExecuteTx(ctx, func(tx pgx.Tx) error {
		billRepo := s.billRepo.WithTx(tx)
		settlementRepo := s.settlementRepo.WithTx(tx)

		if _, err := billRepo.LockForUpdate(ctx, id); err != nil {
			return err
		}

		count, err := settlementRepo.CountByBillID(ctx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return bill.ErrBillHasSettlements{BillID: id, Settlements: count}
		}

		return billRepo.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info("Bill deleted", "bill_id", id)
	return nil
}

// GetBillSettlements returns the settlement audit trail for a bill
func (s *BillServiceImpl) GetBillSettlements(ctx context.Context, id int64) ([]*settlement.Settlement, error) {
	if _, err := s.billRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.settlementRepo.ListByBillID(ctx, id)
}
