package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/boxbank/boxbank-server/internal/storage"
	"github.com/boxbank/boxbank-server/internal/storage/account"
)

type CreateAccount struct {
	OwnerID   uuid.UUID
	Name      string
	Balance   decimal.Decimal
	IBAN      string
	BIC       string
	IsVirtual bool

	// CreatedID is set on success.
	CreatedID uuid.UUID
}

func (a *CreateAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	id, err := writer.Accounts.Create(ctx, &account.AccountCreate{
		OwnerID:   a.OwnerID,
		Name:      a.Name,
		Balance:   a.Balance,
		IBAN:      a.IBAN,
		BIC:       a.BIC,
		IsVirtual: a.IsVirtual,
	})
	if err != nil {
		return err
	}

	a.CreatedID = id
	return nil
}
