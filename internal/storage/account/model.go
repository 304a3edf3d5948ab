package account

import (
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// ErrNonPositiveAmount is a caller contract violation: Credit and Debit
// take strictly positive magnitudes, the sign is decided upstream.
var ErrNonPositiveAmount = errors.New("account: credit/debit amount must be strictly positive")

// Account represents an account record: a container of money the owner
// holds, or only tracks when IsVirtual is set (e.g. money lent out).
type Account struct {
	ID        uuid.UUID       `db:"id"`
	OwnerID   uuid.UUID       `db:"owner_id"`
	Name      string          `db:"name"`
	Balance   decimal.Decimal `db:"balance"`
	IBAN      string          `db:"iban"`
	BIC       string          `db:"bic"`
	IsVirtual bool            `db:"is_virtual"`
	CreatedAt time.Time       `db:"created_at"`
}

// AccountCreate is the input for creating a new account.
type AccountCreate struct {
	OwnerID   uuid.UUID
	Name      string
	Balance   decimal.Decimal
	IBAN      string
	BIC       string
	IsVirtual bool
}

// AccountUpdate carries the editable fields. Balance is deliberately
// absent: balances change only through Credit and Debit.
type AccountUpdate struct {
	Name      string
	IBAN      string
	BIC       string
	IsVirtual bool
}

// AccountFilter specifies paging for listing accounts.
type AccountFilter struct {
	Limit  int
	Offset int
}
