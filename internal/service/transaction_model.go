package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/boxbank/boxbank-server/internal/storage/transaction"
)

// Transaction represents a signed ledger row in the service layer.
type Transaction struct {
	ID               uuid.UUID
	AccountID        uuid.UUID
	BoxID            uuid.UUID
	OtherParty       string
	Amount           decimal.Decimal
	Date             time.Time
	ShortDescription string
	CreatedAt        time.Time
}

// TransactionCursor identifies a position in a paginated result set
// and carries the limit and maxCreationTime so subsequent pages are
// consistent.
type TransactionCursor struct {
	Position        int
	Limit           int
	MaxCreationTime time.Time
}

func transactionFromStorage(row *transaction.Transaction) Transaction {
	return Transaction{
		ID:               row.ID,
		AccountID:        row.AccountID,
		BoxID:            row.BoxID,
		OtherParty:       row.OtherParty,
		Amount:           row.Amount,
		Date:             row.Date,
		ShortDescription: row.ShortDescription,
		CreatedAt:        row.CreatedAt,
	}
}
