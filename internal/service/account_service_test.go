package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/boxbank/boxbank-server/internal/storage/account"
)

type mockAccountReader struct {
	mock.Mock
}

func (m *mockAccountReader) List(ctx context.Context, ownerID uuid.UUID, filter *account.AccountFilter) ([]*account.Account, error) {
	args := m.Called(ctx, ownerID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*account.Account), args.Error(1)
}

func (m *mockAccountReader) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*account.Account, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

func (m *mockAccountReader) TotalBalance(ctx context.Context, ownerID uuid.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func newAccountTestService(t *testing.T) (*AccountService, *mockAccountReader) {
	t.Helper()
	reader := new(mockAccountReader)
	return NewAccountService(reader), reader
}

func makeStorageAccounts(n int, createdAt time.Time) []*account.Account {
	rows := make([]*account.Account, n)
	for i := range rows {
		rows[i] = &account.Account{
			ID:        uuid.Must(uuid.NewV4()),
			OwnerID:   uuid.Must(uuid.NewV4()),
			Name:      "Checking",
			Balance:   decimal.RequireFromString("100.00"),
			IBAN:      "FR7630006000011234567890189",
			BIC:       "AGRIFRPP",
			CreatedAt: createdAt,
		}
	}
	return rows
}

// -- GetAccount tests --

func TestGetAccount_Success(t *testing.T) {
	svc, reader := newAccountTestService(t)

	ownerID := uuid.Must(uuid.NewV4())
	id := uuid.Must(uuid.NewV4())
	row := &account.Account{
		ID:        id,
		OwnerID:   ownerID,
		Name:      "Wallet",
		Balance:   decimal.RequireFromString("42.50"),
		IsVirtual: true,
		CreatedAt: time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC),
	}

	reader.On("FindByID", mock.Anything, ownerID, id).Return(row, nil)

	result, err := svc.GetAccount(context.Background(), ownerID, id)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, id, result.ID)
	assert.Equal(t, "Wallet", result.Name)
	assert.True(t, result.Balance.Equal(row.Balance))
	assert.True(t, result.IsVirtual)
	reader.AssertExpectations(t)
}

func TestGetAccount_NotFound(t *testing.T) {
	svc, reader := newAccountTestService(t)

	ownerID := uuid.Must(uuid.NewV4())
	id := uuid.Must(uuid.NewV4())
	reader.On("FindByID", mock.Anything, ownerID, id).Return(nil, sql.ErrNoRows)

	result, err := svc.GetAccount(context.Background(), ownerID, id)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, result)
}

// -- ListAccounts tests --

func TestListAccounts_NoResults(t *testing.T) {
	svc, reader := newAccountTestService(t)

	reader.On("List", mock.Anything, mock.Anything, mock.Anything).
		Return([]*account.Account{}, nil)

	accounts, next, err := svc.ListAccounts(context.Background(), uuid.Must(uuid.NewV4()), nil)

	assert.NoError(t, err)
	assert.Nil(t, accounts)
	assert.Nil(t, next)
}

func TestListAccounts_SinglePage(t *testing.T) {
	svc, reader := newAccountTestService(t)

	ownerID := uuid.Must(uuid.NewV4())
	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	rows := makeStorageAccounts(2, now)

	reader.On("List", mock.Anything, ownerID, mock.MatchedBy(func(f *account.AccountFilter) bool {
		return f.Limit == defaultAccountLimit && f.Offset == 0
	})).Return(rows, nil)

	accounts, next, err := svc.ListAccounts(context.Background(), ownerID, nil)

	assert.NoError(t, err)
	assert.Len(t, accounts, 2)
	assert.Nil(t, next)

	got := accounts[0]
	assert.Equal(t, rows[0].ID, got.ID)
	assert.Equal(t, rows[0].Name, got.Name)
	assert.True(t, rows[0].Balance.Equal(got.Balance))
	assert.Equal(t, rows[0].IBAN, got.IBAN)
	assert.Equal(t, rows[0].BIC, got.BIC)
	assert.Equal(t, rows[0].CreatedAt, got.CreatedAt)
}

func TestListAccounts_HasNextPage(t *testing.T) {
	svc, reader := newAccountTestService(t)

	ownerID := uuid.Must(uuid.NewV4())
	rows := makeStorageAccounts(defaultAccountLimit+1, time.Now())

	reader.On("List", mock.Anything, ownerID, mock.Anything).Return(rows, nil)

	accounts, next, err := svc.ListAccounts(context.Background(), ownerID, nil)

	assert.NoError(t, err)
	assert.Len(t, accounts, defaultAccountLimit, "truncated to default account limit")
	assert.NotNil(t, next)
	assert.Equal(t, defaultAccountLimit, next.Position)
	assert.Equal(t, defaultAccountLimit, next.Limit)
}

func TestListAccounts_WithCursor(t *testing.T) {
	svc, reader := newAccountTestService(t)

	ownerID := uuid.Must(uuid.NewV4())
	rows := makeStorageAccounts(3, time.Now())

	reader.On("List", mock.Anything, ownerID, mock.MatchedBy(func(f *account.AccountFilter) bool {
		return f.Limit == 2 && f.Offset == 20
	})).Return(rows, nil)

	accounts, next, err := svc.ListAccounts(context.Background(), ownerID, &AccountCursor{
		Position: 20,
		Limit:    2,
	})

	assert.NoError(t, err)
	assert.Len(t, accounts, 2)
	assert.NotNil(t, next)
	assert.Equal(t, 22, next.Position)
	assert.Equal(t, 2, next.Limit)
}

func TestListAccounts_StorageError(t *testing.T) {
	svc, reader := newAccountTestService(t)

	reader.On("List", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("database unavailable"))

	accounts, next, err := svc.ListAccounts(context.Background(), uuid.Must(uuid.NewV4()), nil)

	assert.Error(t, err)
	assert.Equal(t, "database unavailable", err.Error())
	assert.Nil(t, accounts)
	assert.Nil(t, next)
}

// -- TotalBalance tests --

func TestTotalBalance_Success(t *testing.T) {
	svc, reader := newAccountTestService(t)

	ownerID := uuid.Must(uuid.NewV4())
	total := decimal.RequireFromString("1234.56")
	reader.On("TotalBalance", mock.Anything, ownerID).Return(total, nil)

	result, err := svc.TotalBalance(context.Background(), ownerID)

	assert.NoError(t, err)
	assert.True(t, total.Equal(result))
}
