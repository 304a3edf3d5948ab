package transaction

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/boxbank/boxbank-server/internal/ledger"
	"github.com/boxbank/boxbank-server/internal/logging"
	"github.com/boxbank/boxbank-server/internal/operator/actions"
	"github.com/boxbank/boxbank-server/internal/storage"
)

// operatorProcessor runs an action through the operator queue.
type operatorProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// PartyRef names one side of a movement: either a tracked account by
// UUID or an external party by free-text name, never both.
type PartyRef struct {
	AccountID string `json:"accountID,omitempty" format:"uuid" doc:"Tracked account UUID"`
	Name      string `json:"name,omitempty" doc:"External party name"`
}

// CreateTransactionBody is the request body for recording a transaction.
type CreateTransactionBody struct {
	Source           PartyRef `json:"source" required:"true" doc:"Where the money comes from"`
	Destination      PartyRef `json:"destination" required:"true" doc:"Where the money goes"`
	Amount           string   `json:"amount" required:"true" doc:"Positive decimal amount"`
	BoxID            string   `json:"boxID" required:"true" format:"uuid" doc:"Box the movement is budgeted against"`
	Date             string   `json:"date,omitempty" doc:"Transaction date (YYYY-MM-DD), defaults to today"`
	ShortDescription string   `json:"shortDescription,omitempty" doc:"Free-text description"`
}

// CreateTransactionInput is the Huma input for recording a transaction.
type CreateTransactionInput struct {
	OwnerID string `header:"X-Owner-ID" required:"true" format:"uuid" doc:"Owner UUID"`
	Body    CreateTransactionBody
}

// CreateTransactionResponse is the response body for recording a
// transaction. A movement between two tracked accounts yields two rows,
// debit side first.
type CreateTransactionResponse struct {
	IDs []string `json:"ids" doc:"Created transaction UUIDs, debit side first"`
}

// CreateTransactionOutput is the Huma output for recording a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   CreateTransactionResponse
}

// CreateTransactionHandler handles POST /v1/transaction.
type CreateTransactionHandler struct {
	Operator operatorProcessor
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(op operatorProcessor) *CreateTransactionHandler {
	return &CreateTransactionHandler{Operator: op}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-transaction",
		Method:      http.MethodPost,
		Path:        "/v1/transaction",
		Summary:     "Record a transaction",
		Description: "Validates and applies a money movement between two parties, writing one signed ledger row per tracked account and adjusting account and box balances atomically.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseParty(ref PartyRef, side string) (ledger.Party, error) {
	accountID := uuid.Nil
	if ref.AccountID != "" {
		parsed, err := uuid.FromString(ref.AccountID)
		if err != nil {
			return ledger.Party{}, huma.NewError(http.StatusBadRequest, "invalid "+side+" accountID", err)
		}
		accountID = parsed
	}

	party, err := ledger.NewParty(accountID, ref.Name)
	if err != nil {
		return ledger.Party{}, huma.NewError(http.StatusUnprocessableEntity, "invalid "+side, err)
	}
	return party, nil
}

func parseCreateTransactionInput(input *CreateTransactionInput) (*actions.RecordTransaction, error) {
	ownerID, err := uuid.FromString(input.OwnerID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid X-Owner-ID", err)
	}

	source, err := parseParty(input.Body.Source, "source")
	if err != nil {
		return nil, err
	}
	destination, err := parseParty(input.Body.Destination, "destination")
	if err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	boxID, err := uuid.FromString(input.Body.BoxID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid boxID", err)
	}

	date := time.Now().Truncate(24 * time.Hour)
	if input.Body.Date != "" {
		date, err = time.Parse(dateFormat, input.Body.Date)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid date", err)
		}
	}

	return &actions.RecordTransaction{
		OwnerID:          ownerID,
		Source:           source,
		Destination:      destination,
		Amount:           amount,
		BoxID:            boxID,
		Date:             date,
		ShortDescription: input.Body.ShortDescription,
	}, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	action, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("recordTransactionMs")
	}
	err = h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	switch {
	case err == nil:
	case errors.Is(err, ledger.ErrNoTrackedAccount),
		errors.Is(err, ledger.ErrSelfTransfer),
		errors.Is(err, ledger.ErrNonPositiveAmount):
		return nil, huma.NewError(http.StatusUnprocessableEntity, "invalid transaction", err)
	case errors.Is(err, actions.ErrAccountNotFound):
		return nil, huma.NewError(http.StatusNotFound, "account not found", err)
	case errors.Is(err, actions.ErrBoxNotFound):
		return nil, huma.NewError(http.StatusNotFound, "box not found", err)
	default:
		if storage.IsNumericOverflow(err) {
			return nil, huma.NewError(http.StatusUnprocessableEntity, "amount out of range", err)
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to record transaction", err)
	}

	ids := make([]string, len(action.CreatedIDs))
	for i, id := range action.CreatedIDs {
		ids[i] = id.String()
	}

	if logData != nil {
		logData.AddData("transactionCount", len(ids))
	}

	return &CreateTransactionOutput{
		Status: http.StatusCreated,
		Body:   CreateTransactionResponse{IDs: ids},
	}, nil
}
