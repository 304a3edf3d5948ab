package transfer

import (
	"time"

	"github.com/boxbank/boxbank-server/internal/service"
)

const dateFormat = "2006-01-02"

// BoxTransfer is the API response model for a box-to-box movement.
type BoxTransfer struct {
	ID        string `json:"id" doc:"Transfer UUID"`
	FromBoxID string `json:"fromBoxID" doc:"Source box UUID"`
	ToBoxID   string `json:"toBoxID" doc:"Destination box UUID"`
	Amount    string `json:"amount" doc:"Non-negative decimal amount"`
	Date      string `json:"date" doc:"Transfer date (YYYY-MM-DD)"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 creation time"`
}

func fromService(tr service.BoxTransfer) BoxTransfer {
	return BoxTransfer{
		ID:        tr.ID.String(),
		FromBoxID: tr.FromBoxID.String(),
		ToBoxID:   tr.ToBoxID.String(),
		Amount:    tr.Amount.String(),
		Date:      tr.Date.Format(dateFormat),
		CreatedAt: tr.CreatedAt.Format(time.RFC3339),
	}
}
