package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/advance-ledger/internal/domain/settlement"
	"github.com/advance-ledger/internal/platform/persistence"
	"github.com/jackc/pgx/v5"
)

// SettlementRepository implements the settlement.Repository interface for
// PostgreSQL. Settlement records are append-only.
type SettlementRepository struct {
	querier persistence.Querier // Can be *pgxpool.Pool or pgx.Tx
	logger  *slog.Logger
}

// NewSettlementRepository creates a new PostgreSQL settlement repository
func NewSettlementRepository(logger *slog.Logger, db *persistence.PostgresDB) settlement.Repository {
	return &SettlementRepository{
		querier: db.Pool(),
		logger:  logger,
	}
}

// WithTx wraps the repository with a transaction
func (r *SettlementRepository) WithTx(tx pgx.Tx) settlement.Repository {
	return &SettlementRepository{
		querier: tx,
		logger:  r.logger,
	}
}

// Create appends a new settlement record and fills in its generated ID
func (r *SettlementRepository) Create(ctx context.Context, s *settlement.Settlement) error {
	query := `
		INSERT INTO settlement_records (bill_id, funding_id, amount, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.querier.QueryRow(ctx, query,
		s.BillID,
		s.FundingID,
		s.Amount,
		s.CreatedAt,
	).Scan(&s.ID)
	if err != nil {
		r.logger.Error("Failed to create settlement record", "error", err)
		return fmt.Errorf("failed to create settlement record: %w", err)
	}

	return nil
}

// GetByID retrieves a settlement record by its ID
func (r *SettlementRepository) GetByID(ctx context.Context, id int64) (*settlement.Settlement, error) {
	query := `
		SELECT id, bill_id, funding_id, amount, created_at
		FROM settlement_records
		WHERE id = $1
	`

	var s settlement.Settlement
	err := r.querier.QueryRow(ctx, query, id).Scan(&s.ID, &s.BillID, &s.FundingID, &s.Amount, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, settlement.ErrSettlementNotFound{SettlementID: id}
		}
		r.logger.Error("Failed to get settlement record", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get settlement record: %w", err)
	}

	return &s, nil
}

// ListByBillID retrieves the settlement history for a bill, oldest first
func (r *SettlementRepository) ListByBillID(ctx context.Context, billID int64) ([]*settlement.Settlement, error) {
	query := `
		SELECT id, bill_id, funding_id, amount, created_at
		FROM settlement_records
		WHERE bill_id = $1
		ORDER BY id
	`

	rows, err := r.querier.Query(ctx, query, billID)
	if err != nil {
		r.logger.Error("Failed to list settlements by bill", "bill_id", billID, "error", err)
		return nil, fmt.Errorf("failed to list settlements by bill: %w", err)
	}
	defer rows.Close()

	return collectSettlements(rows)
}

// ListByFundingID retrieves the allocation history for a funding record, oldest first
func (r *SettlementRepository) ListByFundingID(ctx context.Context, fundingID int64) ([]*settlement.Settlement, error) {
	query := `
		SELECT id, bill_id, funding_id, amount, created_at
		FROM settlement_records
		WHERE funding_id = $1
		ORDER BY id
	`

	rows, err := r.querier.Query(ctx, query, fundingID)
	if err != nil {
		r.logger.Error("Failed to list settlements by funding record", "funding_id", fundingID, "error", err)
		return nil, fmt.Errorf("failed to list settlements by funding record: %w", err)
	}
	defer rows.Close()

	return collectSettlements(rows)
}

// CountByBillID counts the settlement records referencing a bill
func (r *SettlementRepository) CountByBillID(ctx context.Context, billID int64) (int64, error) {
	query := `SELECT COUNT(*) FROM settlement_records WHERE bill_id = $1`

	var count int64
	if err := r.querier.QueryRow(ctx, query, billID).Scan(&count); err != nil {
		r.logger.Error("Failed to count settlements by bill", "bill_id", billID, "error", err)
		return 0, fmt.Errorf("failed to count settlements by bill: %w", err)
	}

	return count, nil
}

func collectSettlements(rows pgx.Rows) ([]*settlement.Settlement, error) {
	settlements := make([]*settlement.Settlement, 0)
	for rows.Next() {
		var s settlement.Settlement
		if err := rows.Scan(&s.ID, &s.BillID, &s.FundingID, &s.Amount, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan settlement row: %w", err)
		}
		settlements = append(settlements, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read settlement rows: %w", err)
	}
	return settlements, nil
}
