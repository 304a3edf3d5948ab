package transfer

import (
	"context"
	"errors"
	"net/http"
	"time"

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

// CreateTransferBody is the request body for moving budget between boxes.
type CreateTransferBody struct {
	FromBoxID string `json:"fromBoxID" required:"true" format:"uuid" doc:"Source box UUID"`
	ToBoxID   string `json:"toBoxID" required:"true" format:"uuid" doc:"Destination box UUID"`
	Amount    string `json:"amount" required:"true" doc:"Non-negative decimal amount, zero records without moving balance"`
	Date      string `json:"date,omitempty" doc:"Transfer date (YYYY-MM-DD), defaults to today"`
}

// CreateTransferInput is the Huma input for moving budget between boxes.
type CreateTransferInput struct {
	OwnerID string `header:"X-Owner-ID" required:"true" format:"uuid" doc:"Owner UUID"`
	Body    CreateTransferBody
}

// CreateTransferResponse is the response body for a recorded transfer.
type CreateTransferResponse struct {
	ID string `json:"id" doc:"Created transfer UUID"`
}

// CreateTransferOutput is the Huma output for a recorded transfer.
type CreateTransferOutput struct {
	Status int
	Body   CreateTransferResponse
}

// CreateTransferHandler handles POST /v1/transfer.
type CreateTransferHandler struct {
	Operator operatorProcessor
}

// NewCreateTransferHandler creates a new CreateTransferHandler.
func NewCreateTransferHandler(op operatorProcessor) *CreateTransferHandler {
	return &CreateTransferHandler{Operator: op}
}

// Register registers the create transfer endpoint with the Huma API.
func (h *CreateTransferHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-transfer",
		Method:      http.MethodPost,
		Path:        "/v1/transfer",
		Summary:     "Transfer between boxes",
		Description: "Moves budget from one box to another and records the movement.",
		Tags:        []string{"Transfers"},
	}, h.handle)
}

func parseCreateTransferInput(input *CreateTransferInput) (*actions.TransferBoxes, error) {
	ownerID, err := uuid.FromString(input.OwnerID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid X-Owner-ID", err)
	}
	fromBoxID, err := uuid.FromString(input.Body.FromBoxID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid fromBoxID", err)
	}
	toBoxID, err := uuid.FromString(input.Body.ToBoxID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid toBoxID", err)
	}
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	date := time.Now().Truncate(24 * time.Hour)
	if input.Body.Date != "" {
		date, err = time.Parse(dateFormat, input.Body.Date)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid date", err)
		}
	}

	return &actions.TransferBoxes{
		OwnerID:   ownerID,
		FromBoxID: fromBoxID,
		ToBoxID:   toBoxID,
		Amount:    amount,
		Date:      date,
	}, nil
}

func (h *CreateTransferHandler) handle(ctx context.Context, input *CreateTransferInput) (*CreateTransferOutput, error) {
	logData := logging.GetLogData(ctx)

	action, err := parseCreateTransferInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("transferBoxesMs")
	}
	err = h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	switch {
	case err == nil:
	case errors.Is(err, actions.ErrBoxNotFound):
		return nil, huma.NewError(http.StatusNotFound, "box not found", err)
	case errors.Is(err, actions.ErrNegativeTransfer):
		return nil, huma.NewError(http.StatusUnprocessableEntity, "amount must not be negative", err)
	default:
		if storage.IsCheckViolation(err) {
			return nil, huma.NewError(http.StatusUnprocessableEntity, "amount must not be negative", err)
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to transfer between boxes", err)
	}

	if logData != nil {
		logData.AddData("transferID", action.CreatedID.String())
	}

	return &CreateTransferOutput{
		Status: http.StatusCreated,
		Body:   CreateTransferResponse{ID: action.CreatedID.String()},
	}, nil
}
