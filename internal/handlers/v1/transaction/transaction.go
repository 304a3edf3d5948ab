package transaction

import (
	"time"

	"github.com/boxbank/boxbank-server/internal/service"
)

const dateFormat = "2006-01-02"

// Transaction is the API response model for a signed ledger row.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID               string `json:"id" doc:"Transaction UUID"`
	AccountID        string `json:"accountID" doc:"Account UUID"`
	BoxID            string `json:"boxID" doc:"Box UUID"`
	OtherParty       string `json:"otherParty" doc:"Name of the other side of the movement"`
	Amount           string `json:"amount" doc:"Signed decimal amount, negative for debits"`
	Date             string `json:"date" doc:"Transaction date (YYYY-MM-DD)"`
	ShortDescription string `json:"shortDescription,omitempty" doc:"Free-text description"`
	CreatedAt        string `json:"createdAt" doc:"RFC3339 creation time"`
}

func fromService(tx service.Transaction) Transaction {
	return Transaction{
		ID:               tx.ID.String(),
		AccountID:        tx.AccountID.String(),
		BoxID:            tx.BoxID.String(),
		OtherParty:       tx.OtherParty,
		Amount:           tx.Amount.String(),
		Date:             tx.Date.Format(dateFormat),
		ShortDescription: tx.ShortDescription,
		CreatedAt:        tx.CreatedAt.Format(time.RFC3339),
	}
}
