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

// UpdateBoxBody is the request body for updating a box. The balance is
// deliberately absent; box balances only move through transactions and
// transfers.
type UpdateBoxBody struct {
	Name             string `json:"name" required:"true" minLength:"1" doc:"Box name, globally unique"`
	ShortDescription string `json:"shortDescription,omitempty" doc:"Free-text description"`
	TargetValue      *int64 `json:"targetValue,omitempty" minimum:"1" doc:"Savings goal in whole currency units"`
	ParentBoxID      string `json:"parentBoxID,omitempty" format:"uuid" doc:"Parent box UUID, empty detaches the box"`
}

// UpdateBoxInput is the Huma input for updating a box.
type UpdateBoxInput struct {
	OwnerID string `header:"X-Owner-ID" required:"true" format:"uuid" doc:"Owner UUID"`
	ID      string `path:"id" format:"uuid" doc:"Box UUID"`
	Body    UpdateBoxBody
}

// UpdateBoxOutput is the Huma output for updating a box.
type UpdateBoxOutput struct {
	Status int
}

// UpdateBoxHandler handles PUT /v1/box/{id}.
type UpdateBoxHandler struct {
	Operator operatorProcessor
}

// NewUpdateBoxHandler creates a new UpdateBoxHandler.
func NewUpdateBoxHandler(op operatorProcessor) *UpdateBoxHandler {
	return &UpdateBoxHandler{Operator: op}
}

// Register registers the update box endpoint with the Huma API.
func (h *UpdateBoxHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-box",
		Method:      http.MethodPut,
		Path:        "/v1/box/{id}",
		Summary:     "Update a box",
		Description: "Updates a box's details and parent. The balance cannot be set directly.",
		Tags:        []string{"Boxes"},
	}, h.handle)
}

func (h *UpdateBoxHandler) handle(ctx context.Context, input *UpdateBoxInput) (*UpdateBoxOutput, error) {
	logData := logging.GetLogData(ctx)

	ownerID, err := uuid.FromString(input.OwnerID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid X-Owner-ID", err)
	}
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid box id", err)
	}

	var parentBoxID *uuid.UUID
	if input.Body.ParentBoxID != "" {
		parsed, err := uuid.FromString(input.Body.ParentBoxID)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid parentBoxID", err)
		}
		parentBoxID = &parsed
	}

	action := &actions.UpdateBox{
		OwnerID:          ownerID,
		BoxID:            id,
		Name:             input.Body.Name,
		ShortDescription: input.Body.ShortDescription,
		TargetValue:      input.Body.TargetValue,
		ParentBoxID:      parentBoxID,
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("updateBoxMs")
	}
	err = h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if errors.Is(err, actions.ErrBoxNotFound) {
		return nil, huma.NewError(http.StatusNotFound, "box not found", err)
	}
	if errors.Is(err, actions.ErrParentBoxCycle) {
		return nil, huma.NewError(http.StatusUnprocessableEntity, "parent chain would form a cycle", err)
	}
	if err != nil {
		if storage.IsUniqueViolation(err) {
			return nil, huma.NewError(http.StatusConflict, "a box with that name already exists", err)
		}
		if storage.IsCheckViolation(err) {
			return nil, huma.NewError(http.StatusUnprocessableEntity, "targetValue must be at least 1", err)
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to update box", err)
	}

	return &UpdateBoxOutput{Status: http.StatusNoContent}, nil
}
