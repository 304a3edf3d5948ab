package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/boxbank/boxbank-server/internal/logging"
	"github.com/boxbank/boxbank-server/internal/service"
	"github.com/boxbank/boxbank-server/internal/storage/transaction"
)

// NextCursor points at the next page of a paginated transaction listing.
// MaxCreationTime pins the page boundary so rows created after the first
// request do not shift later pages.
type NextCursor struct {
	Position        int    `json:"position" doc:"Offset for next page"`
	Limit           int    `json:"limit" doc:"Page size"`
	MaxCreationTime string `json:"maxCreationTime" doc:"RFC3339 upper bound on row creation time"`
}

// ListTransactionsInput is the Huma input for listing transactions.
type ListTransactionsInput struct {
	OwnerID         string `header:"X-Owner-ID" required:"true" format:"uuid" doc:"Owner UUID"`
	Direction       string `query:"direction" enum:"all,credits,debits" doc:"Restrict to credits or debits, default all"`
	Position        int    `query:"position" minimum:"0" doc:"Offset for pagination"`
	Limit           int    `query:"limit" minimum:"1" maximum:"100" doc:"Page size, default 20"`
	MaxCreationTime string `query:"maxCreationTime" format:"date-time" doc:"RFC3339 upper bound on row creation time, from the previous page's cursor"`
}

// ListTransactionsResponseBody is the response body for listing
// transactions.
type ListTransactionsResponseBody struct {
	Transactions []Transaction `json:"transactions" doc:"Page of transactions, newest first"`
	NextCursor   *NextCursor   `json:"nextCursor,omitempty" doc:"Cursor to fetch the next page, absent on the last page"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	ListTransactions(ctx context.Context, ownerID uuid.UUID, direction transaction.Direction, cursor *service.TransactionCursor) ([]service.Transaction, *service.TransactionCursor, error)
}

// ListTransactionsHandler handles GET /v1/transactions.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/transactions",
		Summary:     "List transactions",
		Description: "Returns a paginated list of the owner's transactions, newest first, optionally restricted to credits or debits.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseDirection(raw string) (transaction.Direction, error) {
	switch raw {
	case "", "all":
		return transaction.DirectionAll, nil
	case "credits":
		return transaction.DirectionCredits, nil
	case "debits":
		return transaction.DirectionDebits, nil
	default:
		return transaction.DirectionAll, huma.NewError(http.StatusBadRequest, "direction must be all, credits or debits", nil)
	}
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)

	ownerID, err := uuid.FromString(input.OwnerID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid X-Owner-ID", err)
	}

	direction, err := parseDirection(input.Direction)
	if err != nil {
		return nil, err
	}

	var cursor *service.TransactionCursor
	if input.Limit != 0 {
		maxCreationTime := time.Now()
		if input.MaxCreationTime != "" {
			maxCreationTime, err = time.Parse(time.RFC3339, input.MaxCreationTime)
			if err != nil {
				return nil, huma.NewError(http.StatusBadRequest, "invalid maxCreationTime", err)
			}
		}
		cursor = &service.TransactionCursor{
			Position:        input.Position,
			Limit:           input.Limit,
			MaxCreationTime: maxCreationTime,
		}
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	transactions, next, err := h.TransactionService.ListTransactions(ctx, ownerID, direction, cursor)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list transactions", err)
	}

	if logData != nil {
		logData.AddData("transactionCount", len(transactions))
	}

	resp := ListTransactionsResponseBody{
		Transactions: make([]Transaction, len(transactions)),
	}
	for i, tx := range transactions {
		resp.Transactions[i] = fromService(tx)
	}
	if next != nil {
		resp.NextCursor = &NextCursor{
			Position:        next.Position,
			Limit:           next.Limit,
			MaxCreationTime: next.MaxCreationTime.Format(time.RFC3339),
		}
	}

	return &ListTransactionsOutput{Body: resp}, nil
}
