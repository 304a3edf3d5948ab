package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/boxbank/boxbank-server/internal/logging"
	"github.com/boxbank/boxbank-server/internal/operator/actions"
	"github.com/boxbank/boxbank-server/internal/storage"
)

// operatorProcessor runs an action through the operator queue.
type operatorProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// CreateAccountBody is the request body fields for creating an account.
type CreateAccountBody struct {
	Name      string `json:"name" required:"true" minLength:"1" doc:"Account name, unique per owner"`
	Balance   string `json:"balance,omitempty" doc:"Initial balance (e.g. '0' or '1234.56'), defaults to 0"`
	IBAN      string `json:"iban,omitempty" doc:"IBAN"`
	BIC       string `json:"bic,omitempty" doc:"BIC"`
	IsVirtual bool   `json:"isVirtual,omitempty" doc:"True for envelopes that do not mirror a bank account"`
}

// CreateAccountInput is the Huma input for creating an account.
type CreateAccountInput struct {
	OwnerID string `header:"X-Owner-ID" required:"true" format:"uuid" doc:"Owner UUID"`
	Body    CreateAccountBody
}

// CreateAccountResponse is the response body for creating an account.
type CreateAccountResponse struct {
	ID string `json:"id" doc:"Created account UUID"`
}

// CreateAccountOutput is the response for creating an account.
type CreateAccountOutput struct {
	Status int
	Body   CreateAccountResponse
}

// CreateAccountHandler handles POST /v1/account.
type CreateAccountHandler struct {
	Operator operatorProcessor
}

// NewCreateAccountHandler creates a new CreateAccountHandler.
func NewCreateAccountHandler(op operatorProcessor) *CreateAccountHandler {
	return &CreateAccountHandler{Operator: op}
}

// Register registers the create account endpoint with the Huma API.
func (h *CreateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-account",
		Method:      http.MethodPost,
		Path:        "/v1/account",
		Summary:     "Create an account",
		Description: "Creates a new account with the given name and initial balance.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func parseCreateAccountInput(input *CreateAccountInput) (*actions.CreateAccount, error) {
	ownerID, err := uuid.FromString(input.OwnerID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid X-Owner-ID", err)
	}

	balanceStr := input.Body.Balance
	if balanceStr == "" {
		balanceStr = "0"
	}
	balance, err := decimal.NewFromString(balanceStr)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid balance", err)
	}

	return &actions.CreateAccount{
		OwnerID:   ownerID,
		Name:      input.Body.Name,
		Balance:   balance,
		IBAN:      input.Body.IBAN,
		BIC:       input.Body.BIC,
		IsVirtual: input.Body.IsVirtual,
	}, nil
}

func (h *CreateAccountHandler) handle(ctx context.Context, input *CreateAccountInput) (*CreateAccountOutput, error) {
	logData := logging.GetLogData(ctx)

	action, err := parseCreateAccountInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createAccountMs")
	}
	err = h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		if storage.IsUniqueViolation(err) {
			return nil, huma.NewError(http.StatusConflict, "an account with that name already exists", err)
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create account", err)
	}

	if logData != nil {
		logData.AddData("accountID", action.CreatedID.String())
	}

	return &CreateAccountOutput{
		Status: http.StatusCreated,
		Body:   CreateAccountResponse{ID: action.CreatedID.String()},
	}, nil
}
