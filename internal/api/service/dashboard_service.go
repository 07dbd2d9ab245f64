package service

import (
	"context"
	"log/slog"

	"github.com/advance-ledger/internal/domain/bill"
	"github.com/advance-ledger/internal/domain/funding"
	"github.com/advance-ledger/internal/domain/report"
	"github.com/advance-ledger/internal/domain/shared"
)

// DashboardServiceImpl implements the DashboardService interface. It is a
// pure read side: it fetches the full entity set and hands it to the report
// package, taking no locks. Slight staleness under concurrent settlements is
// acceptable for a single-owner ledger.
type DashboardServiceImpl struct {
	billRepo       bill.Repository
	fundingRepo    funding.Repository
	classification shared.Classification
	logger         *slog.Logger
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(billRepo bill.Repository, fundingRepo funding.Repository, classification shared.Classification, logger *slog.Logger) DashboardService {
	return &DashboardServiceImpl{
		billRepo:       billRepo,
		fundingRepo:    fundingRepo,
		classification: classification,
		logger:         logger,
	}
}

// GetSummary aggregates the full ledger into the dashboard figures
func (s *DashboardServiceImpl) GetSummary(ctx context.Context) (report.Summary, error) {
	bills, err := s.billRepo.ListAll(ctx)
	if err != nil {
		return report.Summary{}, err
	}

	records, err := s.fundingRepo.ListAll(ctx)
	if err != nil {
		return report.Summary{}, err
	}

	return report.Build(bills, records, s.classification), nil
}
