package transaction

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/boxbank/boxbank-server/internal/logging"
	"github.com/boxbank/boxbank-server/internal/operator/actions"
)

// UpdateTransactionBody is the request body for editing a transaction's
// details. The amount, account and box are immutable; corrections are
// made by recording a compensating transaction.
type UpdateTransactionBody struct {
	OtherParty       string `json:"otherParty" required:"true" minLength:"1" doc:"Name of the other side of the movement"`
	Date             string `json:"date" required:"true" doc:"Transaction date (YYYY-MM-DD)"`
	ShortDescription string `json:"shortDescription,omitempty" doc:"Free-text description"`
}

// UpdateTransactionInput is the Huma input for editing a transaction.
type UpdateTransactionInput struct {
	OwnerID string `header:"X-Owner-ID" required:"true" format:"uuid" doc:"Owner UUID"`
	ID      string `path:"id" format:"uuid" doc:"Transaction UUID"`
	Body    UpdateTransactionBody
}

// UpdateTransactionOutput is the Huma output for editing a transaction.
type UpdateTransactionOutput struct {
	Status int
}

// UpdateTransactionHandler handles PATCH /v1/transaction/{id}.
type UpdateTransactionHandler struct {
	Operator operatorProcessor
}

// NewUpdateTransactionHandler creates a new UpdateTransactionHandler.
func NewUpdateTransactionHandler(op operatorProcessor) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{Operator: op}
}

// Register registers the update transaction endpoint with the Huma API.
func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-transaction",
		Method:      http.MethodPatch,
		Path:        "/v1/transaction/{id}",
		Summary:     "Update a transaction's details",
		Description: "Updates the descriptive fields of a transaction. The amount, account and box cannot be changed.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *UpdateTransactionHandler) handle(ctx context.Context, input *UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	ownerID, err := uuid.FromString(input.OwnerID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid X-Owner-ID", err)
	}
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid transaction id", err)
	}
	date, err := time.Parse(dateFormat, input.Body.Date)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid date", err)
	}

	action := &actions.UpdateTransactionDetails{
		OwnerID:          ownerID,
		TransactionID:    id,
		OtherParty:       input.Body.OtherParty,
		Date:             date,
		ShortDescription: input.Body.ShortDescription,
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("updateTransactionMs")
	}
	err = h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if errors.Is(err, actions.ErrTransactionNotFound) {
		return nil, huma.NewError(http.StatusNotFound, "transaction not found", err)
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to update transaction", err)
	}

	return &UpdateTransactionOutput{Status: http.StatusNoContent}, nil
}
