package box

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/boxbank/boxbank-server/internal/logging"
	"github.com/boxbank/boxbank-server/internal/service"
)

// NextCursor points at the next page of a paginated box listing.
type NextCursor struct {
	Position int `json:"position" doc:"Offset for next page"`
	Limit    int `json:"limit" doc:"Page size"`
}

// ListBoxesInput is the Huma input for listing boxes.
type ListBoxesInput struct {
	OwnerID  string `header:"X-Owner-ID" required:"true" format:"uuid" doc:"Owner UUID"`
	Position int    `query:"position" minimum:"0" doc:"Offset for pagination"`
	Limit    int    `query:"limit" minimum:"1" maximum:"100" doc:"Page size, default 20"`
}

// ListBoxesResponseBody is the response body for listing boxes.
type ListBoxesResponseBody struct {
	Boxes      []Box       `json:"boxes" doc:"Page of boxes"`
	NextCursor *NextCursor `json:"nextCursor,omitempty" doc:"Cursor to fetch the next page, absent on the last page"`
}

// ListBoxesOutput is the Huma output for listing boxes.
type ListBoxesOutput struct {
	Body ListBoxesResponseBody
}

// boxLister is the interface for listing boxes.
type boxLister interface {
	ListBoxes(ctx context.Context, ownerID uuid.UUID, cursor *service.BoxCursor) ([]service.Box, *service.BoxCursor, error)
}

// ListBoxesHandler handles GET /v1/boxes.
type ListBoxesHandler struct {
	BoxService boxLister
}

// NewListBoxesHandler creates a new ListBoxesHandler.
func NewListBoxesHandler(svc boxLister) *ListBoxesHandler {
	return &ListBoxesHandler{BoxService: svc}
}

// Register registers the list boxes endpoint with the Huma API.
func (h *ListBoxesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-boxes",
		Method:      http.MethodGet,
		Path:        "/v1/boxes",
		Summary:     "List boxes",
		Description: "Returns a paginated list of the owner's boxes.",
		Tags:        []string{"Boxes"},
	}, h.handle)
}

func (h *ListBoxesHandler) handle(ctx context.Context, input *ListBoxesInput) (*ListBoxesOutput, error) {
	logData := logging.GetLogData(ctx)

	ownerID, err := uuid.FromString(input.OwnerID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid X-Owner-ID", err)
	}

	var cursor *service.BoxCursor
	if input.Limit != 0 {
		cursor = &service.BoxCursor{
			Position: input.Position,
			Limit:    input.Limit,
		}
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listBoxesMs")
	}
	boxes, next, err := h.BoxService.ListBoxes(ctx, ownerID, cursor)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list boxes", err)
	}

	if logData != nil {
		logData.AddData("boxCount", len(boxes))
	}

	resp := ListBoxesResponseBody{
		Boxes: make([]Box, len(boxes)),
	}
	for i, b := range boxes {
		resp.Boxes[i] = fromService(b)
	}
	if next != nil {
		resp.NextCursor = &NextCursor{
			Position: next.Position,
			Limit:    next.Limit,
		}
	}

	return &ListBoxesOutput{Body: resp}, nil
}
