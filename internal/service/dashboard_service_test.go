package service

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/boxbank/boxbank-server/internal/storage/transaction"
)

type mockDashboardTransactionReader struct {
	mock.Mock
}

func (m *mockDashboardTransactionReader) ListAll(ctx context.Context, ownerID uuid.UUID) ([]*transaction.Transaction, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*transaction.Transaction), args.Error(1)
}

func newDashboardTestService(t *testing.T) (*DashboardService, *mockAccountReader, *mockDashboardTransactionReader) {
	t.Helper()
	accounts := new(mockAccountReader)
	transactions := new(mockDashboardTransactionReader)
	return NewDashboardService(accounts, transactions), accounts, transactions
}

func dashboardRow(date string, amount string) *transaction.Transaction {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return &transaction.Transaction{
		ID:        uuid.Must(uuid.NewV4()),
		AccountID: uuid.Must(uuid.NewV4()),
		BoxID:     uuid.Must(uuid.NewV4()),
		Amount:    decimal.RequireFromString(amount),
		Date:      parsed,
		CreatedAt: parsed,
	}
}

func TestSummary_Empty(t *testing.T) {
	svc, accounts, transactions := newDashboardTestService(t)

	ownerID := uuid.Must(uuid.NewV4())
	accounts.On("TotalBalance", mock.Anything, ownerID).Return(decimal.Zero, nil)
	transactions.On("ListAll", mock.Anything, ownerID).Return([]*transaction.Transaction{}, nil)

	summary, err := svc.Summary(context.Background(), ownerID)

	assert.NoError(t, err)
	assert.True(t, summary.TotalBalance.IsZero())
	assert.Empty(t, summary.Weekly.Keys)
	assert.Empty(t, summary.Monthly.Keys)
}

func TestSummary_WeeklyRunningBalance(t *testing.T) {
	svc, accounts, transactions := newDashboardTestService(t)

	ownerID := uuid.Must(uuid.NewV4())
	accounts.On("TotalBalance", mock.Anything, ownerID).
		Return(decimal.RequireFromString("100"), nil)

	// Newest first: +30 in the week of Jul 14, then -20 and +50 in the
	// week of Jul 7.
	transactions.On("ListAll", mock.Anything, ownerID).Return([]*transaction.Transaction{
		dashboardRow("2025-07-15", "30"),
		dashboardRow("2025-07-09", "-20"),
		dashboardRow("2025-07-07", "50"),
	}, nil)

	summary, err := svc.Summary(context.Background(), ownerID)

	assert.NoError(t, err)
	// Oldest first. The balance stood at 70 at the end of the earlier
	// week (100 minus the later week's +30) and at 100 after the latest.
	assert.Equal(t, []string{"27", "28"}, summary.Weekly.Keys)
	assert.Equal(t, []string{"70", "100"}, summary.Weekly.Values)
}

func TestSummary_MonthlyNetFlow(t *testing.T) {
	svc, accounts, transactions := newDashboardTestService(t)

	ownerID := uuid.Must(uuid.NewV4())
	accounts.On("TotalBalance", mock.Anything, ownerID).
		Return(decimal.RequireFromString("500"), nil)

	transactions.On("ListAll", mock.Anything, ownerID).Return([]*transaction.Transaction{
		dashboardRow("2025-07-20", "-15"),
		dashboardRow("2025-07-02", "40"),
		dashboardRow("2025-06-11", "-100"),
	}, nil)

	summary, err := svc.Summary(context.Background(), ownerID)

	assert.NoError(t, err)
	assert.Equal(t, []string{"6", "7"}, summary.Monthly.Keys)
	assert.Equal(t, []string{"-100", "25"}, summary.Monthly.Values)
}

func TestWeekBucket_YearBoundary(t *testing.T) {
	// 2025-01-01 is a Wednesday. Days before the year's first Monday fold
	// into the final week of the previous year.
	year, week := weekBucket(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 2024, year)
	assert.Equal(t, 53, week)

	// The first Monday starts week 1.
	year, week = weekBucket(time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 2025, year)
	assert.Equal(t, 1, week)
}
