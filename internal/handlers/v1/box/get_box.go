package box

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/boxbank/boxbank-server/internal/logging"
	"github.com/boxbank/boxbank-server/internal/service"
)

// GetBoxInput is the Huma input for fetching a single box.
type GetBoxInput struct {
	OwnerID string `header:"X-Owner-ID" required:"true" format:"uuid" doc:"Owner UUID"`
	ID      string `path:"id" format:"uuid" doc:"Box UUID"`
}

// GetBoxOutput is the Huma output for fetching a single box.
type GetBoxOutput struct {
	Body Box
}

// boxGetter is the interface for fetching one box.
type boxGetter interface {
	GetBox(ctx context.Context, ownerID, id uuid.UUID) (*service.Box, error)
}

// GetBoxHandler handles GET /v1/box/{id}.
type GetBoxHandler struct {
	BoxService boxGetter
}

// NewGetBoxHandler creates a new GetBoxHandler.
func NewGetBoxHandler(svc boxGetter) *GetBoxHandler {
	return &GetBoxHandler{BoxService: svc}
}

// Register registers the get box endpoint with the Huma API.
func (h *GetBoxHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-box",
		Method:      http.MethodGet,
		Path:        "/v1/box/{id}",
		Summary:     "Get a box",
		Tags:        []string{"Boxes"},
	}, h.handle)
}

func (h *GetBoxHandler) handle(ctx context.Context, input *GetBoxInput) (*GetBoxOutput, error) {
	logData := logging.GetLogData(ctx)

	ownerID, err := uuid.FromString(input.OwnerID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid X-Owner-ID", err)
	}
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid box id", err)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("getBoxMs")
	}
	b, err := h.BoxService.GetBox(ctx, ownerID, id)
	if stopTimer != nil {
		stopTimer()
	}
	if errors.Is(err, service.ErrNotFound) {
		return nil, huma.NewError(http.StatusNotFound, "box not found", err)
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to get box", err)
	}

	return &GetBoxOutput{Body: fromService(*b)}, nil
}
