package dashboard

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/boxbank/boxbank-server/internal/logging"
	"github.com/boxbank/boxbank-server/internal/service"
)

// Series is a chart-ready pair of parallel key/value arrays, oldest
// first.
type Series struct {
	Keys   []string `json:"keys" doc:"Bucket labels, oldest first"`
	Values []string `json:"values" doc:"Decimal values aligned with keys"`
}

// SummaryInput is the Huma input for the dashboard summary.
type SummaryInput struct {
	OwnerID string `header:"X-Owner-ID" required:"true" format:"uuid" doc:"Owner UUID"`
}

// SummaryResponseBody is the response body for the dashboard summary.
type SummaryResponseBody struct {
	TotalBalance string `json:"totalBalance" doc:"Combined decimal balance of all accounts"`
	Weekly       Series `json:"weekly" doc:"Running balance at the end of each week with activity"`
	Monthly      Series `json:"monthly" doc:"Net flow of each month with activity"`
}

// SummaryOutput is the Huma output for the dashboard summary.
type SummaryOutput struct {
	Body SummaryResponseBody
}

// summarizer is the interface for computing the dashboard.
type summarizer interface {
	Summary(ctx context.Context, ownerID uuid.UUID) (*service.DashboardSummary, error)
}

// SummaryHandler handles GET /v1/dashboard.
type SummaryHandler struct {
	DashboardService summarizer
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(svc summarizer) *SummaryHandler {
	return &SummaryHandler{DashboardService: svc}
}

// Register registers the dashboard endpoint with the Huma API.
func (h *SummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "dashboard-summary",
		Method:      http.MethodGet,
		Path:        "/v1/dashboard",
		Summary:     "Dashboard summary",
		Description: "Returns the owner's combined balance plus weekly and monthly chart series.",
		Tags:        []string{"Dashboard"},
	}, h.handle)
}

func (h *SummaryHandler) handle(ctx context.Context, input *SummaryInput) (*SummaryOutput, error) {
	logData := logging.GetLogData(ctx)

	ownerID, err := uuid.FromString(input.OwnerID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid X-Owner-ID", err)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("dashboardSummaryMs")
	}
	summary, err := h.DashboardService.Summary(ctx, ownerID)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to build dashboard", err)
	}

	return &SummaryOutput{
		Body: SummaryResponseBody{
			TotalBalance: summary.TotalBalance.String(),
			Weekly:       Series{Keys: summary.Weekly.Keys, Values: summary.Weekly.Values},
			Monthly:      Series{Keys: summary.Monthly.Keys, Values: summary.Monthly.Values},
		},
	}, nil
}
