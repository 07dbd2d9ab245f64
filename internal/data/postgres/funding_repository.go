package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/advance-ledger/internal/domain/funding"
	"github.com/advance-ledger/internal/platform/persistence"
	"github.com/jackc/pgx/v5"
)

// FundingRepository implements the funding.Repository interface for PostgreSQL
type FundingRepository struct {
	querier persistence.Querier // Can be *pgxpool.Pool or pgx.Tx
	logger  *slog.Logger
}

// NewFundingRepository creates a new PostgreSQL funding record repository
func NewFundingRepository(logger *slog.Logger, db *persistence.PostgresDB) funding.Repository {
	return &FundingRepository{
		querier: db.Pool(),
		logger:  logger,
	}
}

// WithTx wraps the repository with a transaction
func (r *FundingRepository) WithTx(tx pgx.Tx) funding.Repository {
	return &FundingRepository{
		querier: tx,
		logger:  r.logger,
	}
}

// Create stores a new funding record and fills in its generated ID
func (r *FundingRepository) Create(ctx context.Context, rec *funding.Record) error {
	query := `
		INSERT INTO funding_records (amount_total, amount_unused, source, period, remark, version, received_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := r.querier.QueryRow(ctx, query,
		rec.AmountTotal,
		rec.AmountUnused,
		rec.Source,
		rec.Period,
		rec.Remark,
		rec.Version,
		rec.ReceivedDate,
		rec.CreatedAt,
	).Scan(&rec.ID)
	if err != nil {
		r.logger.Error("Failed to create funding record", "error", err)
		return fmt.Errorf("failed to create funding record: %w", err)
	}

	return nil
}

// GetByID retrieves a funding record by its ID
func (r *FundingRepository) GetByID(ctx context.Context, id int64) (*funding.Record, error) {
	query := `
		SELECT id, amount_total, amount_unused, source, period, remark, version, received_date, created_at
		FROM funding_records
		WHERE id = $1
	`

	rec, err := scanFundingRecord(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, funding.ErrRecordNotFound{RecordID: id}
		}
		r.logger.Error("Failed to get funding record", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get funding record: %w", err)
	}

	return rec, nil
}

// List retrieves funding records newest-first with pagination. When
// availableOnly is set, records with no unused balance are excluded.
func (r *FundingRepository) List(ctx context.Context, limit, offset int, availableOnly bool) ([]*funding.Record, error) {
	query := `
		SELECT id, amount_total, amount_unused, source, period, remark, version, received_date, created_at
		FROM funding_records
		WHERE ($3 = false OR amount_unused > 0)
		ORDER BY id DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.querier.Query(ctx, query, limit, offset, availableOnly)
	if err != nil {
		r.logger.Error("Failed to list funding records", "error", err)
		return nil, fmt.Errorf("failed to list funding records: %w", err)
	}
	defer rows.Close()

	return collectFundingRecords(rows)
}

// ListAll retrieves every funding record, used by the dashboard aggregation
func (r *FundingRepository) ListAll(ctx context.Context) ([]*funding.Record, error) {
	query := `
		SELECT id, amount_total, amount_unused, source, period, remark, version, received_date, created_at
		FROM funding_records
		ORDER BY id
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		r.logger.Error("Failed to list all funding records", "error", err)
		return nil, fmt.Errorf("failed to list all funding records: %w", err)
	}
	defer rows.Close()

	return collectFundingRecords(rows)
}

// Update persists funding record changes, checking the previous version so a
// stale write surfaces as ErrConcurrentModification.
func (r *FundingRepository) Update(ctx context.Context, rec *funding.Record) error {
	query := `
		UPDATE funding_records
		SET amount_unused = $1, remark = $2, version = $3
		WHERE id = $4 AND version = $5
	`

	result, err := r.querier.Exec(ctx, query,
		rec.AmountUnused,
		rec.Remark,
		rec.Version,
		rec.ID,
		rec.Version-1, // Check previous version for optimistic locking
	)
	if err != nil {
		r.logger.Error("Failed to update funding record", "id", rec.ID, "error", err)
		return fmt.Errorf("failed to update funding record: %w", err)
	}

	if result.RowsAffected() == 0 {
		return funding.ErrConcurrentModification{RecordID: rec.ID}
	}

	return nil
}

// LockForUpdate obtains a pessimistic lock on the funding record row and
// returns its current state. Must be used within a transaction.
func (r *FundingRepository) LockForUpdate(ctx context.Context, id int64) (*funding.Record, error) {
	query := `
		SELECT id, amount_total, amount_unused, source, period, remark, version, received_date, created_at
		FROM funding_records
		WHERE id = $1
		FOR UPDATE
	`

	rec, err := scanFundingRecord(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, funding.ErrRecordNotFound{RecordID: id}
		}
		r.logger.Error("Failed to lock funding record for update", "id", id, "error", err)
		return nil, fmt.Errorf("failed to lock funding record for update: %w", err)
	}

	return rec, nil
}

func scanFundingRecord(row pgx.Row) (*funding.Record, error) {
	var rec funding.Record
	err := row.Scan(
		&rec.ID,
		&rec.AmountTotal,
		&rec.AmountUnused,
		&rec.Source,
		&rec.Period,
		&rec.Remark,
		&rec.Version,
		&rec.ReceivedDate,
		&rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func collectFundingRecords(rows pgx.Rows) ([]*funding.Record, error) {
	records := make([]*funding.Record, 0)
	for rows.Next() {
		rec, err := scanFundingRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan funding record row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read funding record rows: %w", err)
	}
	return records, nil
}
