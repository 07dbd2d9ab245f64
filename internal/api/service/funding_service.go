package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/advance-ledger/internal/domain/funding"
	"github.com/advance-ledger/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// FundingServiceImpl implements the FundingService interface
type FundingServiceImpl struct {
	fundingRepo funding.Repository
	logger      *slog.Logger
}

// NewFundingService creates a new funding record service
func NewFundingService(fundingRepo funding.Repository, logger *slog.Logger) FundingService {
	return &FundingServiceImpl{
		fundingRepo: fundingRepo,
		logger:      logger,
	}
}

// CreateRecord records money received into the pool
func (s *FundingServiceImpl) CreateRecord(ctx context.Context, amountTotal decimal.Decimal, source shared.Source, period, remark string, receivedDate time.Time) (*funding.Record, error) {
	rec, err := funding.NewRecord(amountTotal, source, period, remark, receivedDate)
	if err != nil {
		return nil, err
	}

	if err := s.fundingRepo.Create(ctx, rec); err != nil {
		return nil, err
	}

	s.logger.Info("Funding record created", "funding_id", rec.ID, "amount_total", rec.AmountTotal, "source", rec.Source)
	return rec, nil
}

// GetRecordByID retrieves a funding record by its ID
func (s *FundingServiceImpl) GetRecordByID(ctx context.Context, id int64) (*funding.Record, error) {
	return s.fundingRepo.GetByID(ctx, id)
}

// ListRecords returns funding records newest-first with pagination
func (s *FundingServiceImpl) ListRecords(ctx context.Context, limit, offset int, availableOnly bool) ([]*funding.Record, error) {
	return s.fundingRepo.List(ctx, limit, offset, availableOnly)
}
