package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/boxbank/boxbank-server/internal/storage"
)

// DeleteAccount removes an account. Its ledger rows go with it via the
// schema's cascade; box balances those rows contributed to stay as they
// are, a known limitation of deletion.
type DeleteAccount struct {
	OwnerID   uuid.UUID
	AccountID uuid.UUID
}

func (a *DeleteAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	found, err := writer.Accounts.Delete(ctx, a.OwnerID, a.AccountID)
	if err != nil {
		return err
	}
	if !found {
		return ErrAccountNotFound
	}
	return nil
}
