package account

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/boxbank/boxbank-server/internal/service"
)

// mockAccountService is a mock for the account read interfaces.
type mockAccountService struct {
	mock.Mock
}

func (m *mockAccountService) ListAccounts(ctx context.Context, ownerID uuid.UUID, cursor *service.AccountCursor) ([]service.Account, *service.AccountCursor, error) {
	args := m.Called(ctx, ownerID, cursor)
	var accounts []service.Account
	if args.Get(0) != nil {
		accounts = args.Get(0).([]service.Account)
	}
	var next *service.AccountCursor
	if args.Get(1) != nil {
		next = args.Get(1).(*service.AccountCursor)
	}
	return accounts, next, args.Error(2)
}

func (m *mockAccountService) TotalBalance(ctx context.Context, ownerID uuid.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *mockAccountService) GetAccount(ctx context.Context, ownerID, id uuid.UUID) (*service.Account, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Account), args.Error(1)
}

func TestHTTP_ListAccounts_Success(t *testing.T) {
	ownerID, header := ownerHeader()
	accountID := uuid.Must(uuid.NewV4())

	svc := new(mockAccountService)
	svc.On("ListAccounts", mock.Anything, ownerID, (*service.AccountCursor)(nil)).
		Return([]service.Account{{
			ID:        accountID,
			Name:      "Checking",
			Balance:   decimal.RequireFromString("99.50"),
			IBAN:      "FR7630006000011234567890189",
			BIC:       "AGRIFRPP",
			CreatedAt: time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC),
		}}, nil, nil)
	svc.On("TotalBalance", mock.Anything, ownerID).
		Return(decimal.RequireFromString("99.50"), nil)

	_, api := humatest.New(t)
	NewListAccountsHandler(svc).Register(api)

	resp := api.Get("/v1/accounts", header)

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListAccountsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Accounts, 1)
	assert.Equal(t, accountID.String(), body.Accounts[0].ID)
	assert.Equal(t, "Checking", body.Accounts[0].Name)
	assert.Equal(t, "99.5", body.Accounts[0].Balance)
	assert.Equal(t, "99.5", body.TotalBalance)
	assert.Nil(t, body.NextCursor)
	svc.AssertExpectations(t)
}

func TestHTTP_ListAccounts_WithCursor(t *testing.T) {
	ownerID, header := ownerHeader()

	svc := new(mockAccountService)
	svc.On("ListAccounts", mock.Anything, ownerID, &service.AccountCursor{Position: 20, Limit: 10}).
		Return([]service.Account{}, &service.AccountCursor{Position: 30, Limit: 10}, nil)
	svc.On("TotalBalance", mock.Anything, ownerID).Return(decimal.Zero, nil)

	_, api := humatest.New(t)
	NewListAccountsHandler(svc).Register(api)

	resp := api.Get("/v1/accounts?position=20&limit=10", header)

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListAccountsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotNil(t, body.NextCursor)
	assert.Equal(t, 30, body.NextCursor.Position)
	assert.Equal(t, 10, body.NextCursor.Limit)
	svc.AssertExpectations(t)
}

func TestHTTP_ListAccounts_ServiceError(t *testing.T) {
	_, header := ownerHeader()

	svc := new(mockAccountService)
	svc.On("ListAccounts", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, nil, errors.New("database unavailable"))

	_, api := humatest.New(t)
	NewListAccountsHandler(svc).Register(api)

	resp := api.Get("/v1/accounts", header)

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestHTTP_GetAccount_Success(t *testing.T) {
	ownerID, header := ownerHeader()
	accountID := uuid.Must(uuid.NewV4())

	svc := new(mockAccountService)
	svc.On("GetAccount", mock.Anything, ownerID, accountID).
		Return(&service.Account{
			ID:      accountID,
			Name:    "Savings",
			Balance: decimal.RequireFromString("1000"),
		}, nil)

	_, api := humatest.New(t)
	NewGetAccountHandler(svc).Register(api)

	resp := api.Get("/v1/account/"+accountID.String(), header)

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Account
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Savings", body.Name)
	svc.AssertExpectations(t)
}

func TestHTTP_GetAccount_NotFound(t *testing.T) {
	ownerID, header := ownerHeader()
	accountID := uuid.Must(uuid.NewV4())

	svc := new(mockAccountService)
	svc.On("GetAccount", mock.Anything, ownerID, accountID).
		Return(nil, service.ErrNotFound)

	_, api := humatest.New(t)
	NewGetAccountHandler(svc).Register(api)

	resp := api.Get("/v1/account/"+accountID.String(), header)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}
