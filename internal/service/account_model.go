package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/boxbank/boxbank-server/internal/storage/account"
)

// Account represents an account in the service layer.
type Account struct {
	ID        uuid.UUID
	Name      string
	Balance   decimal.Decimal
	IBAN      string
	BIC       string
	IsVirtual bool
	CreatedAt time.Time
}

// AccountCursor identifies a position in a paginated result set.
type AccountCursor struct {
	Position int
	Limit    int
}

func accountFromStorage(row *account.Account) Account {
	return Account{
		ID:        row.ID,
		Name:      row.Name,
		Balance:   row.Balance,
		IBAN:      row.IBAN,
		BIC:       row.BIC,
		IsVirtual: row.IsVirtual,
		CreatedAt: row.CreatedAt,
	}
}
