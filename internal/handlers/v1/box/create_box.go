package box

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

// operatorProcessor runs an action through the operator queue.
type operatorProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// CreateBoxBody is the request body fields for creating a box.
type CreateBoxBody struct {
	Name             string `json:"name" required:"true" minLength:"1" doc:"Box name, globally unique"`
	ShortDescription string `json:"shortDescription,omitempty" doc:"Free-text description"`
	TargetValue      *int64 `json:"targetValue,omitempty" minimum:"1" doc:"Savings goal in whole currency units"`
	ParentBoxID      string `json:"parentBoxID,omitempty" format:"uuid" doc:"Parent box UUID"`
}

// CreateBoxInput is the Huma input for creating a box.
type CreateBoxInput struct {
	OwnerID string `header:"X-Owner-ID" required:"true" format:"uuid" doc:"Owner UUID"`
	Body    CreateBoxBody
}

// CreateBoxResponse is the response body for creating a box.
type CreateBoxResponse struct {
	ID string `json:"id" doc:"Created box UUID"`
}

// CreateBoxOutput is the response for creating a box.
type CreateBoxOutput struct {
	Status int
	Body   CreateBoxResponse
}

// CreateBoxHandler handles POST /v1/box.
type CreateBoxHandler struct {
	Operator operatorProcessor
}

// NewCreateBoxHandler creates a new CreateBoxHandler.
func NewCreateBoxHandler(op operatorProcessor) *CreateBoxHandler {
	return &CreateBoxHandler{Operator: op}
}

// Register registers the create box endpoint with the Huma API.
func (h *CreateBoxHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-box",
		Method:      http.MethodPost,
		Path:        "/v1/box",
		Summary:     "Create a box",
		Description: "Creates a new budget box, optionally nested under a parent box.",
		Tags:        []string{"Boxes"},
	}, h.handle)
}

func parseCreateBoxInput(input *CreateBoxInput) (*actions.CreateBox, error) {
	ownerID, err := uuid.FromString(input.OwnerID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid X-Owner-ID", err)
	}

	var parentBoxID *uuid.UUID
	if input.Body.ParentBoxID != "" {
		parsed, err := uuid.FromString(input.Body.ParentBoxID)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid parentBoxID", err)
		}
		parentBoxID = &parsed
	}

	return &actions.CreateBox{
		OwnerID:          ownerID,
		Name:             input.Body.Name,
		ShortDescription: input.Body.ShortDescription,
		TargetValue:      input.Body.TargetValue,
		ParentBoxID:      parentBoxID,
	}, nil
}

func (h *CreateBoxHandler) handle(ctx context.Context, input *CreateBoxInput) (*CreateBoxOutput, error) {
	logData := logging.GetLogData(ctx)

	action, err := parseCreateBoxInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createBoxMs")
	}
	err = h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if errors.Is(err, actions.ErrBoxNotFound) {
		return nil, huma.NewError(http.StatusNotFound, "parent box not found", err)
	}
	if err != nil {
		if storage.IsUniqueViolation(err) {
			return nil, huma.NewError(http.StatusConflict, "a box with that name already exists", err)
		}
		if storage.IsCheckViolation(err) {
			return nil, huma.NewError(http.StatusUnprocessableEntity, "targetValue must be at least 1", err)
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create box", err)
	}

	if logData != nil {
		logData.AddData("boxID", action.CreatedID.String())
	}

	return &CreateBoxOutput{
		Status: http.StatusCreated,
		Body:   CreateBoxResponse{ID: action.CreatedID.String()},
	}, nil
}
