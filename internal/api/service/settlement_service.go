package service

import (
	"context"
	"log/slog"

	"github.com/advance-ledger/internal/domain/bill"
	"github.com/advance-ledger/internal/domain/funding"
	"github.com/advance-ledger/internal/domain/settlement"
	"github.com/advance-ledger/internal/domain/shared"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// SettlementServiceImpl implements the SettlementService interface. It is the
// only component that mutates more than one row, so it is the only one that
// takes row locks.
type SettlementServiceImpl struct {
	db             TxRunner
	billRepo       bill.Repository
	fundingRepo    funding.Repository
	settlementRepo settlement.Repository
	logger         *slog.Logger
}

// NewSettlementService creates a new settlement service
func NewSettlementService(
	db TxRunner,
	billRepo bill.Repository,
	fundingRepo funding.Repository,
	settlementRepo settlement.Repository,
	logger *slog.Logger,
) SettlementService {
	return &SettlementServiceImpl{
		db:             db,
		billRepo:       billRepo,
		fundingRepo:    fundingRepo,
		settlementRepo: settlementRepo,
		logger:         logger,
	}
}

// ApplySettlement validates and applies one settlement as a single
// transaction. Lock order is always bill first, then funding record, so two
// settlements over the same pair cannot deadlock. Validation happens under
// the locks, so concurrent settlements can never both pass against a stale
// balance.
func (s *SettlementServiceImpl) ApplySettlement(ctx context.Context, billID, fundingID int64, amount decimal.Decimal) (*SettlementResult, error) {
	var result SettlementResult

	err := s.db.ExecuteTx(ctx, func(tx pgx.Tx) error {
		billRepo := s.billRepo.WithTx(tx)
		fundingRepo := s.fundingRepo.WithTx(tx)
		settlementRepo := s.settlementRepo.WithTx(tx)

		lockedBill, err := billRepo.LockForUpdate(ctx, billID)
		if err != nil {
			return err
		}

		lockedFunding, err := fundingRepo.LockForUpdate(ctx, fundingID)
		if err != nil {
			return err
		}

		// Amount positivity is enforced upstream, re-checked here
		if !amount.IsPositive() {
			return shared.ErrInvalidAmount
		}

		if err := lockedFunding.Allocate(amount); err != nil {
			s.logger.Warn("Settlement rejected on funding record",
				"bill_id", billID, "funding_id", fundingID, "amount", amount, "error", err)
			return err
		}

		if err := lockedBill.ApplySettlement(amount); err != nil {
			s.logger.Warn("Settlement rejected on bill",
				"bill_id", billID, "funding_id", fundingID, "amount", amount, "error", err)
			return err
		}

		if err := billRepo.Update(ctx, lockedBill); err != nil {
			return err
		}
		if err := fundingRepo.Update(ctx, lockedFunding); err != nil {
			return err
		}

		rec, err := settlement.New(billID, fundingID, amount)
		if err != nil {
			return err
		}
		if err := settlementRepo.Create(ctx, rec); err != nil {
			return err
		}

		result = SettlementResult{
			Bill:       lockedBill,
			Funding:    lockedFunding,
			Settlement: rec,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Settlement applied",
		"settlement_id", result.Settlement.ID,
		"bill_id", billID,
		"funding_id", fundingID,
		"amount", amount,
		"bill_status", result.Bill.Status,
		"funding_unused", result.Funding.AmountUnused,
	)

	return &result, nil
}
