package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/boxbank/boxbank-server/internal/storage/transaction"
)

type mockTransactionReader struct {
	mock.Mock
}

func (m *mockTransactionReader) List(ctx context.Context, ownerID uuid.UUID, filter *transaction.TransactionFilter) ([]*transaction.Transaction, error) {
	args := m.Called(ctx, ownerID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*transaction.Transaction), args.Error(1)
}

func newTransactionTestService(t *testing.T) (*TransactionService, *mockTransactionReader) {
	t.Helper()
	reader := new(mockTransactionReader)
	return NewTransactionService(reader), reader
}

func makeStorageTransactions(n int, createdAt time.Time) []*transaction.Transaction {
	rows := make([]*transaction.Transaction, n)
	for i := range rows {
		rows[i] = &transaction.Transaction{
			ID:               uuid.Must(uuid.NewV4()),
			AccountID:        uuid.Must(uuid.NewV4()),
			BoxID:            uuid.Must(uuid.NewV4()),
			OtherParty:       "Grocery Store",
			Amount:           decimal.RequireFromString("-25.90"),
			Date:             createdAt.Truncate(24 * time.Hour),
			ShortDescription: "weekly groceries",
			CreatedAt:        createdAt.Add(-time.Duration(i) * time.Minute),
		}
	}
	return rows
}

func TestListTransactions_NoResults(t *testing.T) {
	svc, reader := newTransactionTestService(t)

	reader.On("List", mock.Anything, mock.Anything, mock.Anything).
		Return([]*transaction.Transaction{}, nil)

	transactions, next, err := svc.ListTransactions(context.Background(), uuid.Must(uuid.NewV4()), transaction.DirectionAll, nil)

	assert.NoError(t, err)
	assert.Nil(t, transactions)
	assert.Nil(t, next)
}

func TestListTransactions_SinglePage(t *testing.T) {
	svc, reader := newTransactionTestService(t)

	ownerID := uuid.Must(uuid.NewV4())
	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	rows := makeStorageTransactions(3, now)

	reader.On("List", mock.Anything, ownerID, mock.MatchedBy(func(f *transaction.TransactionFilter) bool {
		return f.Direction == transaction.DirectionDebits &&
			f.Limit == defaultTransactionLimit &&
			f.Offset == 0 &&
			f.MaxCreationTime == nil
	})).Return(rows, nil)

	transactions, next, err := svc.ListTransactions(context.Background(), ownerID, transaction.DirectionDebits, nil)

	assert.NoError(t, err)
	assert.Len(t, transactions, 3)
	assert.Nil(t, next)

	got := transactions[0]
	assert.Equal(t, rows[0].ID, got.ID)
	assert.Equal(t, rows[0].AccountID, got.AccountID)
	assert.Equal(t, rows[0].BoxID, got.BoxID)
	assert.Equal(t, "Grocery Store", got.OtherParty)
	assert.True(t, rows[0].Amount.Equal(got.Amount))
	assert.Equal(t, "weekly groceries", got.ShortDescription)
}

func TestListTransactions_FirstPageCursorPinsCreationTime(t *testing.T) {
	svc, reader := newTransactionTestService(t)

	ownerID := uuid.Must(uuid.NewV4())
	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	rows := makeStorageTransactions(defaultTransactionLimit+1, now)

	reader.On("List", mock.Anything, ownerID, mock.Anything).Return(rows, nil)

	transactions, next, err := svc.ListTransactions(context.Background(), ownerID, transaction.DirectionAll, nil)

	assert.NoError(t, err)
	assert.Len(t, transactions, defaultTransactionLimit)
	assert.NotNil(t, next)
	assert.Equal(t, defaultTransactionLimit, next.Position)
	assert.Equal(t, defaultTransactionLimit, next.Limit)
	assert.Equal(t, rows[0].CreatedAt, next.MaxCreationTime,
		"first page pins the cursor to the newest row's creation time")
}

func TestListTransactions_LaterPagesEchoCreationTime(t *testing.T) {
	svc, reader := newTransactionTestService(t)

	ownerID := uuid.Must(uuid.NewV4())
	pinned := time.Date(2025, 6, 30, 23, 59, 0, 0, time.UTC)
	rows := makeStorageTransactions(3, pinned)

	reader.On("List", mock.Anything, ownerID, mock.MatchedBy(func(f *transaction.TransactionFilter) bool {
		return f.Limit == 2 && f.Offset == 2 &&
			f.MaxCreationTime != nil && f.MaxCreationTime.Equal(pinned)
	})).Return(rows, nil)

	transactions, next, err := svc.ListTransactions(context.Background(), ownerID, transaction.DirectionAll, &TransactionCursor{
		Position:        2,
		Limit:           2,
		MaxCreationTime: pinned,
	})

	assert.NoError(t, err)
	assert.Len(t, transactions, 2)
	assert.NotNil(t, next)
	assert.Equal(t, 4, next.Position)
	assert.Equal(t, 2, next.Limit)
	assert.Equal(t, pinned, next.MaxCreationTime, "subsequent pages keep the pinned creation time")
}

func TestListTransactions_StorageError(t *testing.T) {
	svc, reader := newTransactionTestService(t)

	reader.On("List", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("database unavailable"))

	transactions, next, err := svc.ListTransactions(context.Background(), uuid.Must(uuid.NewV4()), transaction.DirectionAll, nil)

	assert.Error(t, err)
	assert.Nil(t, transactions)
	assert.Nil(t, next)
}
