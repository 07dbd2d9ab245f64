package service

import (
	"context"
	"io"
	"log/slog"

	"github.com/advance-ledger/internal/domain/bill"
	"github.com/advance-ledger/internal/domain/funding"
	"github.com/advance-ledger/internal/domain/settlement"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// stubTxRunner mimics ExecuteTx semantics: the callback runs unless beginning
// the transaction fails, and its error propagates as the rollback path would.
type stubTxRunner struct {
	beginErr error
}

func (s *stubTxRunner) ExecuteTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	if s.beginErr != nil {
		return s.beginErr
	}
	return fn(nil)
}

type MockBillRepository struct {
	mock.Mock
}

func (m *MockBillRepository) Create(ctx context.Context, b *bill.Bill) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBillRepository) GetByID(ctx context.Context, id int64) (*bill.Bill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bill.Bill), args.Error(1)
}

func (m *MockBillRepository) List(ctx context.Context, limit, offset int, unsettledOnly bool) ([]*bill.Bill, error) {
	args := m.Called(ctx, limit, offset, unsettledOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*bill.Bill), args.Error(1)
}

func (m *MockBillRepository) ListAll(ctx context.Context) ([]*bill.Bill, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*bill.Bill), args.Error(1)
}

func (m *MockBillRepository) Update(ctx context.Context, b *bill.Bill) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBillRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBillRepository) LockForUpdate(ctx context.Context, id int64) (*bill.Bill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bill.Bill), args.Error(1)
}

func (m *MockBillRepository) WithTx(tx pgx.Tx) bill.Repository {
	m.Called(tx)
	return m
}

type MockFundingRepository struct {
	mock.Mock
}

func (m *MockFundingRepository) Create(ctx context.Context, r *funding.Record) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockFundingRepository) GetByID(ctx context.Context, id int64) (*funding.Record, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*funding.Record), args.Error(1)
}

func (m *MockFundingRepository) List(ctx context.Context, limit, offset int, availableOnly bool) ([]*funding.Record, error) {
	args := m.Called(ctx, limit, offset, availableOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*funding.Record), args.Error(1)
}

func (m *MockFundingRepository) ListAll(ctx context.Context) ([]*funding.Record, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*funding.Record), args.Error(1)
}

func (m *MockFundingRepository) Update(ctx context.Context, r *funding.Record) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockFundingRepository) LockForUpdate(ctx context.Context, id int64) (*funding.Record, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*funding.Record), args.Error(1)
}

func (m *MockFundingRepository) WithTx(tx pgx.Tx) funding.Repository {
	m.Called(tx)
	return m
}

type MockSettlementRepository struct {
	mock.Mock
}

func (m *MockSettlementRepository) Create(ctx context.Context, s *settlement.Settlement) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSettlementRepository) GetByID(ctx context.Context, id int64) (*settlement.Settlement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*settlement.Settlement), args.Error(1)
}

func (m *MockSettlementRepository) ListByBillID(ctx context.Context, billID int64) ([]*settlement.Settlement, error) {
	args := m.Called(ctx, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*settlement.Settlement), args.Error(1)
}

func (m *MockSettlementRepository) ListByFundingID(ctx context.Context, fundingID int64) ([]*settlement.Settlement, error) {
	args := m.Called(ctx, fundingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*settlement.Settlement), args.Error(1)
}

func (m *MockSettlementRepository) CountByBillID(ctx context.Context, billID int64) (int64, error) {
	args := m.Called(ctx, billID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSettlementRepository) WithTx(tx pgx.Tx) settlement.Repository {
	m.Called(tx)
	return m
}
