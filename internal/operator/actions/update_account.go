package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/boxbank/boxbank-server/internal/storage"
	"github.com/boxbank/boxbank-server/internal/storage/account"
)

// UpdateAccount rewrites an account's editable fields. The balance is not
// editable through this path.
type UpdateAccount struct {
	OwnerID   uuid.UUID
	AccountID uuid.UUID
	Name      string
	IBAN      string
	BIC       string
	IsVirtual bool
}

func (a *UpdateAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	found, err := writer.Accounts.Update(ctx, a.OwnerID, a.AccountID, &account.AccountUpdate{
		Name:      a.Name,
		IBAN:      a.IBAN,
		BIC:       a.BIC,
		IsVirtual: a.IsVirtual,
	})
	if err != nil {
		return err
	}
	if !found {
		return ErrAccountNotFound
	}
	return nil
}
