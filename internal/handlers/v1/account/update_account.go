package account

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/boxbank/boxbank-server/internal/logging"
	"github.com/boxbank/boxbank-server/internal/operator/actions"
	"github.com/boxbank/boxbank-server/internal/storage"
)

// UpdateAccountBody is the request body for updating an account. Balance
// is deliberately absent; balances only move through transactions.
type UpdateAccountBody struct {
	Name      string `json:"name" required:"true" minLength:"1" doc:"Account name, unique per owner"`
	IBAN      string `json:"iban,omitempty" doc:"IBAN"`
	BIC       string `json:"bic,omitempty" doc:"BIC"`
	IsVirtual bool   `json:"isVirtual,omitempty" doc:"True for envelopes that do not mirror a bank account"`
}

// UpdateAccountInput is the Huma input for updating an account.
type UpdateAccountInput struct {
	OwnerID string `header:"X-Owner-ID" required:"true" format:"uuid" doc:"Owner UUID"`
	ID      string `path:"id" format:"uuid" doc:"Account UUID"`
	Body    UpdateAccountBody
}

// UpdateAccountOutput is the Huma output for updating an account.
type UpdateAccountOutput struct {
	Status int
}

// UpdateAccountHandler handles PUT /v1/account/{id}.
type UpdateAccountHandler struct {
	Operator operatorProcessor
}

// NewUpdateAccountHandler creates a new UpdateAccountHandler.
func NewUpdateAccountHandler(op operatorProcessor) *UpdateAccountHandler {
	return &UpdateAccountHandler{Operator: op}
}

// Register registers the update account endpoint with the Huma API.
func (h *UpdateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-account",
		Method:      http.MethodPut,
		Path:        "/v1/account/{id}",
		Summary:     "Update an account",
		Description: "Updates an account's details. The balance cannot be set directly.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *UpdateAccountHandler) handle(ctx context.Context, input *UpdateAccountInput) (*UpdateAccountOutput, error) {
	logData := logging.GetLogData(ctx)

	ownerID, err := uuid.FromString(input.OwnerID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid X-Owner-ID", err)
	}
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid account id", err)
	}

	action := &actions.UpdateAccount{
		OwnerID:   ownerID,
		AccountID: id,
		Name:      input.Body.Name,
		IBAN:      input.Body.IBAN,
		BIC:       input.Body.BIC,
		IsVirtual: input.Body.IsVirtual,
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("updateAccountMs")
	}
	err = h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if errors.Is(err, actions.ErrAccountNotFound) {
		return nil, huma.NewError(http.StatusNotFound, "account not found", err)
	}
	if err != nil {
		if storage.IsUniqueViolation(err) {
			return nil, huma.NewError(http.StatusConflict, "an account with that name already exists", err)
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to update account", err)
	}

	return &UpdateAccountOutput{Status: http.StatusNoContent}, nil
}
