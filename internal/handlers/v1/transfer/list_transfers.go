package transfer

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/boxbank/boxbank-server/internal/logging"
	"github.com/boxbank/boxbank-server/internal/service"
)

// NextCursor points at the next page of a paginated transfer listing.
type NextCursor struct {
	Position int `json:"position" doc:"Offset for next page"`
	Limit    int `json:"limit" doc:"Page size"`
}

// ListTransfersInput is the Huma input for listing transfers.
type ListTransfersInput struct {
	OwnerID  string `header:"X-Owner-ID" required:"true" format:"uuid" doc:"Owner UUID"`
	Position int    `query:"position" minimum:"0" doc:"Offset for pagination"`
	Limit    int    `query:"limit" minimum:"1" maximum:"100" doc:"Page size, default 20"`
}

// ListTransfersResponseBody is the response body for listing transfers.
type ListTransfersResponseBody struct {
	Transfers  []BoxTransfer `json:"transfers" doc:"Page of transfers, newest first"`
	NextCursor *NextCursor   `json:"nextCursor,omitempty" doc:"Cursor to fetch the next page, absent on the last page"`
}

// ListTransfersOutput is the Huma output for listing transfers.
type ListTransfersOutput struct {
	Body ListTransfersResponseBody
}

// transferLister is the interface for listing transfers.
type transferLister interface {
	ListTransfers(ctx context.Context, ownerID uuid.UUID, cursor *service.TransferCursor) ([]service.BoxTransfer, *service.TransferCursor, error)
}

// ListTransfersHandler handles GET /v1/transfers.
type ListTransfersHandler struct {
	TransferService transferLister
}

// NewListTransfersHandler creates a new ListTransfersHandler.
func NewListTransfersHandler(svc transferLister) *ListTransfersHandler {
	return &ListTransfersHandler{TransferService: svc}
}

// Register registers the list transfers endpoint with the Huma API.
func (h *ListTransfersHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transfers",
		Method:      http.MethodGet,
		Path:        "/v1/transfers",
		Summary:     "List box transfers",
		Description: "Returns a paginated list of the owner's box transfers, newest first.",
		Tags:        []string{"Transfers"},
	}, h.handle)
}

func (h *ListTransfersHandler) handle(ctx context.Context, input *ListTransfersInput) (*ListTransfersOutput, error) {
	logData := logging.GetLogData(ctx)

	ownerID, err := uuid.FromString(input.OwnerID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid X-Owner-ID", err)
	}

	var cursor *service.TransferCursor
	if input.Limit != 0 {
		cursor = &service.TransferCursor{
			Position: input.Position,
			Limit:    input.Limit,
		}
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransfersMs")
	}
	transfers, next, err := h.TransferService.ListTransfers(ctx, ownerID, cursor)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list transfers", err)
	}

	if logData != nil {
		logData.AddData("transferCount", len(transfers))
	}

	resp := ListTransfersResponseBody{
		Transfers: make([]BoxTransfer, len(transfers)),
	}
	for i, tr := range transfers {
		resp.Transfers[i] = fromService(tr)
	}
	if next != nil {
		resp.NextCursor = &NextCursor{
			Position: next.Position,
			Limit:    next.Limit,
		}
	}

	return &ListTransfersOutput{Body: resp}, nil
}
