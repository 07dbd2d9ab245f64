package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/advance-ledger/internal/api/service"
	"github.com/advance-ledger/internal/domain/bill"
	"github.com/advance-ledger/internal/domain/funding"
	"github.com/advance-ledger/internal/domain/report"
	"github.com/advance-ledger/internal/domain/settlement"
	"github.com/advance-ledger/internal/domain/shared"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, nil))
}

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// decodeData unmarshals the "data" field of the response envelope into out
func decodeData(t *testing.T, body []byte, out interface{}) {
	t.Helper()

	var envelope Response
	require.NoError(t, json.Unmarshal(body, &envelope))
	require.NotNil(t, envelope.Data)

	dataBytes, err := json.Marshal(envelope.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(dataBytes, out))
}

// decodeError unmarshals the "error" field of the response envelope
func decodeError(t *testing.T, body []byte) *ErrorInfo {
	t.Helper()

	var envelope Response
	require.NoError(t, json.Unmarshal(body, &envelope))
	require.NotNil(t, envelope.Error)
	return envelope.Error
}

type MockBillService struct {
	mock.Mock
}

func (m *MockBillService) CreateBill(ctx context.Context, title string, amountTotal decimal.Decimal, category shared.Category, remark string) (*bill.Bill, error) {
	args := m.Called(ctx, title, amountTotal, category, remark)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bill.Bill), args.Error(1)
}

func (m *MockBillService) GetBillByID(ctx context.Context, id int64) (*bill.Bill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bill.Bill), args.Error(1)
}

func (m *MockBillService) ListBills(ctx context.Context, limit, offset int, unsettledOnly bool) ([]*bill.Bill, error) {
	args := m.Called(ctx, limit, offset, unsettledOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*bill.Bill), args.Error(1)
}

func (m *MockBillService) UpdateBill(ctx context.Context, id int64, title string, amountTotal decimal.Decimal, category shared.Category) (*bill.Bill, error) {
	args := m.Called(ctx, id, title, amountTotal, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bill.Bill), args.Error(1)
}

func (m *MockBillService) DeleteBill(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBillService) GetBillSettlements(ctx context.Context, id int64) ([]*settlement.Settlement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*settlement.Settlement), args.Error(1)
}

type MockFundingService struct {
	mock.Mock
}

func (m *MockFundingService) CreateRecord(ctx context.Context, amountTotal decimal.Decimal, source shared.Source, period, remark string, receivedDate time.Time) (*funding.Record, error) {
	args := m.Called(ctx, amountTotal, source, period, remark, receivedDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*funding.Record), args.Error(1)
}

func (m *MockFundingService) GetRecordByID(ctx context.Context, id int64) (*funding.Record, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*funding.Record), args.Error(1)
}

func (m *MockFundingService) ListRecords(ctx context.Context, limit, offset int, availableOnly bool) ([]*funding.Record, error) {
	args := m.Called(ctx, limit, offset, availableOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*funding.Record), args.Error(1)
}

type MockSettlementService struct {
	mock.Mock
}

func (m *MockSettlementService) ApplySettlement(ctx context.Context, billID, fundingID int64, amount decimal.Decimal) (*service.SettlementResult, error) {
	args := m.Called(ctx, billID, fundingID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SettlementResult), args.Error(1)
}

type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) GetSummary(ctx context.Context) (report.Summary, error) {
	args := m.Called(ctx)
	return args.Get(0).(report.Summary), args.Error(1)
}
