package transaction

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Direction selects a signed subset of the ledger: credits are rows with
// amount > 0, debits rows with amount < 0.
type Direction int8

const (
	DirectionAll Direction = iota
	DirectionCredits
	DirectionDebits
)

// Transaction represents one signed ledger row. A negative amount is money
// leaving the account (a debit), a positive amount money entering (a
// credit). OtherParty names the opposite side, as text even when it is
// another tracked account.
type Transaction struct {
	ID               uuid.UUID       `db:"id"`
	AccountID        uuid.UUID       `db:"account_id"`
	BoxID            uuid.UUID       `db:"box_id"`
	OtherParty       string          `db:"other_party"`
	Amount           decimal.Decimal `db:"amount"`
	Date             time.Time       `db:"date"`
	ShortDescription string          `db:"short_description"`
	CreatedAt        time.Time       `db:"created_at"`
}

// TransactionCreate is the input for inserting a ledger row. The amount is
// already signed by the ledger core.
type TransactionCreate struct {
	AccountID        uuid.UUID
	BoxID            uuid.UUID
	OtherParty       string
	Amount           decimal.Decimal
	Date             time.Time
	ShortDescription string
}

// TransactionDetailsUpdate carries the non-monetary fields. Amount,
// account, and box are immutable once the row exists.
type TransactionDetailsUpdate struct {
	OtherParty       string
	Date             time.Time
	ShortDescription string
}

// TransactionFilter specifies filters and paging for listing transactions.
type TransactionFilter struct {
	Direction       Direction
	Limit           int
	Offset          int
	MaxCreationTime *time.Time
}
