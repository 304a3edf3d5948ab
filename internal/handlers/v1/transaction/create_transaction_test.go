package transaction

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

	"github.com/boxbank/boxbank-server/internal/ledger"
	"github.com/boxbank/boxbank-server/internal/operator/actions"
)

// mockOperator is a mock for operatorProcessor.
type mockOperator struct {
	mock.Mock
}

func (m *mockOperator) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

func ownerHeader() (uuid.UUID, string) {
	ownerID := uuid.Must(uuid.NewV4())
	return ownerID, "X-Owner-ID: " + ownerID.String()
}

// newTestAPI registers the handler against a humatest API and returns it.
func newTestAPI(t *testing.T, op operatorProcessor) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewCreateTransactionHandler(op).Register(api)
	return api
}

// -- parseCreateTransactionInput unit tests --
// These verify individual parsed field values which the HTTP tests don't assert.

func TestParseCreateTransactionInput_TwoTrackedAccounts(t *testing.T) {
	ownerID := uuid.Must(uuid.NewV4())
	sourceID := uuid.Must(uuid.NewV4())
	destinationID := uuid.Must(uuid.NewV4())
	boxID := uuid.Must(uuid.NewV4())

	input := &CreateTransactionInput{
		OwnerID: ownerID.String(),
		Body: CreateTransactionBody{
			Source:           PartyRef{AccountID: sourceID.String()},
			Destination:      PartyRef{AccountID: destinationID.String()},
			Amount:           "123.45",
			BoxID:            boxID.String(),
			Date:             "2025-01-15",
			ShortDescription: "rent",
		},
	}

	action, err := parseCreateTransactionInput(input)
	assert.NoError(t, err)
	assert.Equal(t, ownerID, action.OwnerID)

	gotSource, tracked := action.Source.Tracked()
	assert.True(t, tracked)
	assert.Equal(t, sourceID, gotSource)

	gotDestination, tracked := action.Destination.Tracked()
	assert.True(t, tracked)
	assert.Equal(t, destinationID, gotDestination)

	assert.True(t, action.Amount.Equal(decimal.RequireFromString("123.45")))
	assert.Equal(t, boxID, action.BoxID)
	assert.Equal(t, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), action.Date)
	assert.Equal(t, "rent", action.ShortDescription)
}

func TestParseCreateTransactionInput_ExternalParty(t *testing.T) {
	input := &CreateTransactionInput{
		OwnerID: uuid.Must(uuid.NewV4()).String(),
		Body: CreateTransactionBody{
			Source:      PartyRef{Name: "Employer"},
			Destination: PartyRef{AccountID: uuid.Must(uuid.NewV4()).String()},
			Amount:      "2000",
			BoxID:       uuid.Must(uuid.NewV4()).String(),
		},
	}

	action, err := parseCreateTransactionInput(input)
	assert.NoError(t, err)

	name, external := action.Source.External()
	assert.True(t, external)
	assert.Equal(t, "Employer", name)
	assert.False(t, action.Date.IsZero(), "date defaults to today")
}

func TestParseCreateTransactionInput_AmbiguousParty(t *testing.T) {
	input := &CreateTransactionInput{
		OwnerID: uuid.Must(uuid.NewV4()).String(),
		Body: CreateTransactionBody{
			Source:      PartyRef{AccountID: uuid.Must(uuid.NewV4()).String(), Name: "Employer"},
			Destination: PartyRef{AccountID: uuid.Must(uuid.NewV4()).String()},
			Amount:      "10",
			BoxID:       uuid.Must(uuid.NewV4()).String(),
		},
	}

	_, err := parseCreateTransactionInput(input)
	assert.Error(t, err)
}

// -- HTTP integration tests (full Huma stack via humatest) --

func TestHTTP_CreateTransaction_Success(t *testing.T) {
	ownerID, header := ownerHeader()
	sourceID := uuid.Must(uuid.NewV4())
	boxID := uuid.Must(uuid.NewV4())
	createdID := uuid.Must(uuid.NewV4())

	op := new(mockOperator)
	op.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		record, ok := a.(*actions.RecordTransaction)
		if !ok || record.OwnerID != ownerID || record.BoxID != boxID {
			return false
		}
		gotSource, tracked := record.Source.Tracked()
		return tracked && gotSource == sourceID &&
			record.Amount.Equal(decimal.RequireFromString("12.50"))
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*actions.RecordTransaction).CreatedIDs = []uuid.UUID{createdID}
	}).Return(nil)

	resp := newTestAPI(t, op).Post("/v1/transaction", header, CreateTransactionBody{
		Source:      PartyRef{AccountID: sourceID.String()},
		Destination: PartyRef{Name: "Coffee Shop"},
		Amount:      "12.50",
		BoxID:       boxID.String(),
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body CreateTransactionResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, []string{createdID.String()}, body.IDs)
	op.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_TwoRowsForInternalMovement(t *testing.T) {
	_, header := ownerHeader()
	debitID := uuid.Must(uuid.NewV4())
	creditID := uuid.Must(uuid.NewV4())

	op := new(mockOperator)
	op.On("Process", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*actions.RecordTransaction).CreatedIDs = []uuid.UUID{debitID, creditID}
	}).Return(nil)

	resp := newTestAPI(t, op).Post("/v1/transaction", header, CreateTransactionBody{
		Source:      PartyRef{AccountID: uuid.Must(uuid.NewV4()).String()},
		Destination: PartyRef{AccountID: uuid.Must(uuid.NewV4()).String()},
		Amount:      "100",
		BoxID:       uuid.Must(uuid.NewV4()).String(),
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body CreateTransactionResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, []string{debitID.String(), creditID.String()}, body.IDs)
}

func TestHTTP_CreateTransaction_BothPartiesExternal(t *testing.T) {
	_, header := ownerHeader()

	op := new(mockOperator)
	op.On("Process", mock.Anything, mock.Anything).Return(ledger.ErrNoTrackedAccount)

	resp := newTestAPI(t, op).Post("/v1/transaction", header, CreateTransactionBody{
		Source:      PartyRef{Name: "Employer"},
		Destination: PartyRef{Name: "Landlord"},
		Amount:      "100",
		BoxID:       uuid.Must(uuid.NewV4()).String(),
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestHTTP_CreateTransaction_SelfTransfer(t *testing.T) {
	_, header := ownerHeader()

	op := new(mockOperator)
	op.On("Process", mock.Anything, mock.Anything).Return(ledger.ErrSelfTransfer)

	accountID := uuid.Must(uuid.NewV4()).String()
	resp := newTestAPI(t, op).Post("/v1/transaction", header, CreateTransactionBody{
		Source:      PartyRef{AccountID: accountID},
		Destination: PartyRef{AccountID: accountID},
		Amount:      "100",
		BoxID:       uuid.Must(uuid.NewV4()).String(),
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestHTTP_CreateTransaction_NonPositiveAmount(t *testing.T) {
	_, header := ownerHeader()

	op := new(mockOperator)
	op.On("Process", mock.Anything, mock.Anything).Return(ledger.ErrNonPositiveAmount)

	resp := newTestAPI(t, op).Post("/v1/transaction", header, CreateTransactionBody{
		Source:      PartyRef{AccountID: uuid.Must(uuid.NewV4()).String()},
		Destination: PartyRef{Name: "Shop"},
		Amount:      "-5",
		BoxID:       uuid.Must(uuid.NewV4()).String(),
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestHTTP_CreateTransaction_EmptyParty(t *testing.T) {
	_, header := ownerHeader()
	op := new(mockOperator)

	// Neither accountID nor name on the source side fails before the
	// handler reaches the operator.
	resp := newTestAPI(t, op).Post("/v1/transaction", header, CreateTransactionBody{
		Source:      PartyRef{},
		Destination: PartyRef{Name: "Shop"},
		Amount:      "10",
		BoxID:       uuid.Must(uuid.NewV4()).String(),
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	op.AssertNotCalled(t, "Process")
}

func TestHTTP_CreateTransaction_InvalidAmount(t *testing.T) {
	_, header := ownerHeader()
	op := new(mockOperator)

	resp := newTestAPI(t, op).Post("/v1/transaction", header, CreateTransactionBody{
		Source:      PartyRef{AccountID: uuid.Must(uuid.NewV4()).String()},
		Destination: PartyRef{Name: "Shop"},
		Amount:      "not-a-decimal",
		BoxID:       uuid.Must(uuid.NewV4()).String(),
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	op.AssertNotCalled(t, "Process")
}

func TestHTTP_CreateTransaction_BoxNotFound(t *testing.T) {
	_, header := ownerHeader()

	op := new(mockOperator)
	op.On("Process", mock.Anything, mock.Anything).Return(actions.ErrBoxNotFound)

	resp := newTestAPI(t, op).Post("/v1/transaction", header, CreateTransactionBody{
		Source:      PartyRef{AccountID: uuid.Must(uuid.NewV4()).String()},
		Destination: PartyRef{Name: "Shop"},
		Amount:      "10",
		BoxID:       uuid.Must(uuid.NewV4()).String(),
	})

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_CreateTransaction_OperatorError(t *testing.T) {
	_, header := ownerHeader()

	op := new(mockOperator)
	op.On("Process", mock.Anything, mock.Anything).
		Return(errors.New("database unavailable"))

	resp := newTestAPI(t, op).Post("/v1/transaction", header, CreateTransactionBody{
		Source:      PartyRef{AccountID: uuid.Must(uuid.NewV4()).String()},
		Destination: PartyRef{Name: "Shop"},
		Amount:      "10",
		BoxID:       uuid.Must(uuid.NewV4()).String(),
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	op.AssertExpectations(t)
}
