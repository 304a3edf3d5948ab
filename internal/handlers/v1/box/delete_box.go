package box

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/boxbank/boxbank-server/internal/logging"
	"github.com/boxbank/boxbank-server/internal/operator/actions"
)

// DeleteBoxInput is the Huma input for deleting a box.
type DeleteBoxInput struct {
	OwnerID string `header:"X-Owner-ID" required:"true" format:"uuid" doc:"Owner UUID"`
	ID      string `path:"id" format:"uuid" doc:"Box UUID"`
}

// DeleteBoxOutput is the Huma output for deleting a box.
type DeleteBoxOutput struct {
	Status int
}

// DeleteBoxHandler handles DELETE /v1/box/{id}.
type DeleteBoxHandler struct {
	Operator operatorProcessor
}

// NewDeleteBoxHandler creates a new DeleteBoxHandler.
func NewDeleteBoxHandler(op operatorProcessor) *DeleteBoxHandler {
	return &DeleteBoxHandler{Operator: op}
}

// Register registers the delete box endpoint with the Huma API.
func (h *DeleteBoxHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-box",
		Method:      http.MethodDelete,
		Path:        "/v1/box/{id}",
		Summary:     "Delete a box",
		Description: "Deletes a box. Child boxes are detached, not deleted.",
		Tags:        []string{"Boxes"},
	}, h.handle)
}

func (h *DeleteBoxHandler) handle(ctx context.Context, input *DeleteBoxInput) (*DeleteBoxOutput, error) {
	logData := logging.GetLogData(ctx)

	ownerID, err := uuid.FromString(input.OwnerID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid X-Owner-ID", err)
	}
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid box id", err)
	}

	action := &actions.DeleteBox{
		OwnerID: ownerID,
		BoxID:   id,
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("deleteBoxMs")
	}
	err = h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if errors.Is(err, actions.ErrBoxNotFound) {
		return nil, huma.NewError(http.StatusNotFound, "box not found", err)
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to delete box", err)
	}

	return &DeleteBoxOutput{Status: http.StatusNoContent}, nil
}
