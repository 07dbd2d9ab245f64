// Package postgres provides PostgreSQL implementations of the domain
// repositories. It handles all database operations while maintaining
// transaction safety and proper error handling for the advance ledger.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/advance-ledger/internal/domain/bill"
	"github.com/advance-ledger/internal/platform/persistence"
	"github.com/jackc/pgx/v5"
)

// BillRepository implements the bill.Repository interface for PostgreSQL
type BillRepository struct {
	querier persistence.Querier // Can be *pgxpool.Pool or pgx.Tx
	logger  *slog.Logger
}

// NewBillRepository creates a new PostgreSQL bill repository.
// It expects db.Pool() to satisfy persistence.Querier.
func NewBillRepository(logger *slog.Logger, db *persistence.PostgresDB) bill.Repository {
	return &BillRepository{
		querier: db.Pool(),
		logger:  logger,
	}
}

// WithTx wraps the repository with a transaction so multiple repository calls
// commit or roll back as one unit.
func (r *BillRepository) WithTx(tx pgx.Tx) bill.Repository {
	return &BillRepository{
		querier: tx,
		logger:  r.logger,
	}
}

// Create stores a new bill and fills in its generated ID
func (r *BillRepository) Create(ctx context.Context, b *bill.Bill) error {
	query := `
		INSERT INTO bills (title, category, amount_total, amount_settled, status, remark, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	err := r.querier.QueryRow(ctx, query,
		b.Title,
		b.Category,
		b.AmountTotal,
		b.AmountSettled,
		b.Status,
		b.Remark,
		b.Version,
		b.CreatedAt,
		b.UpdatedAt,
	).Scan(&b.ID)
	if err != nil {
		r.logger.Error("Failed to create bill", "error", err)
		return fmt.Errorf("failed to create bill: %w", err)
	}

	return nil
}

// GetByID retrieves a bill by its ID
func (r *BillRepository) GetByID(ctx context.Context, id int64) (*bill.Bill, error) {
	query := `
		SELECT id, title, category, amount_total, amount_settled, status, remark, version, created_at, updated_at
		FROM bills
		WHERE id = $1
	`

	b, err := scanBill(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, bill.ErrBillNotFound{BillID: id}
		}
		r.logger.Error("Failed to get bill", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get bill: %w", err)
	}

	return b, nil
}

// List retrieves bills newest-first with pagination. When unsettledOnly is
// set, bills whose status is settled are excluded.
func (r *BillRepository) List(ctx context.Context, limit, offset int, unsettledOnly bool) ([]*bill.Bill, error) {
	query := `
		SELECT id, title, category, amount_total, amount_settled, status, remark, version, created_at, updated_at
		FROM bills
		WHERE ($3 = false OR status <> 'settled')
		ORDER BY id DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.querier.Query(ctx, query, limit, offset, unsettledOnly)
	if err != nil {
		r.logger.Error("Failed to list bills", "error", err)
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	defer rows.Close()

	return collectBills(rows)
}

// ListAll retrieves every bill, used by the dashboard aggregation
func (r *BillRepository) ListAll(ctx context.Context) ([]*bill.Bill, error) {
	query := `
		SELECT id, title, category, amount_total, amount_settled, status, remark, version, created_at, updated_at
		FROM bills
		ORDER BY id
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		r.logger.Error("Failed to list all bills", "error", err)
		return nil, fmt.Errorf("failed to list all bills: %w", err)
	}
	defer rows.Close()

	return collectBills(rows)
}

// Update persists bill changes, checking the previous version so a stale
// write surfaces as ErrConcurrentModification.
func (r *BillRepository) Update(ctx context.Context, b *bill.Bill) error {
	query := `
		UPDATE bills
		SET title = $1, category = $2, amount_total = $3, amount_settled = $4, status = $5, remark = $6, version = $7, updated_at = $8
		WHERE id = $9 AND version = $10
	`

	result, err := r.querier.Exec(ctx, query,
		b.Title,
		b.Category,
		b.AmountTotal,
		b.AmountSettled,
		b.Status,
		b.Remark,
		b.Version,
		b.UpdatedAt,
		b.ID,
		b.Version-1, // Check previous version for optimistic locking
	)
	if err != nil {
		r.logger.Error("Failed to update bill", "id", b.ID, "error", err)
		return fmt.Errorf("failed to update bill: %w", err)
	}

	if result.RowsAffected() == 0 {
		return bill.ErrConcurrentModification{BillID: b.ID}
	}

	return nil
}

// Delete removes a bill. Callers must first verify the bill has no
// settlement records; the schema's RESTRICT constraint backs that check.
func (r *BillRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM bills WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		r.logger.Error("Failed to delete bill", "id", id, "error", err)
		return fmt.Errorf("failed to delete bill: %w", err)
	}

	if result.RowsAffected() == 0 {
		return bill.ErrBillNotFound{BillID: id}
	}

	return nil
}

// LockForUpdate obtains a pessimistic lock on the bill row and returns its
// current state. Must be used within a transaction.
func (r *BillRepository) LockForUpdate(ctx context.Context, id int64) (*bill.Bill, error) {
	query := `
		SELECT id, title, category, amount_total, amount_settled, status, remark, version, created_at, updated_at
		FROM bills
		WHERE id = $1
		FOR UPDATE
	`

	b, err := scanBill(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, bill.ErrBillNotFound{BillID: id}
		}
		r.logger.Error("Failed to lock bill for update", "id", id, "error", err)
		return nil, fmt.Errorf("failed to lock bill for update: %w", err)
	}

	return b, nil
}

func scanBill(row pgx.Row) (*bill.Bill, error) {
	var b bill.Bill
	err := row.Scan(
		&b.ID,
		&b.Title,
		&b.Category,
		&b.AmountTotal,
		&b.AmountSettled,
		&b.Status,
		&b.Remark,
		&b.Version,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func collectBills(rows pgx.Rows) ([]*bill.Bill, error) {
	bills := make([]*bill.Bill, 0)
	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bill row: %w", err)
		}
		bills = append(bills, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read bill rows: %w", err)
	}
	return bills, nil
}
