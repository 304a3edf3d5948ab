package actions

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"

	"github.com/boxbank/boxbank-server/internal/storage"
)

// DeleteTransaction removes a ledger row without reversing its balance
// effects, a known limitation of deletion.
type DeleteTransaction struct {
	OwnerID       uuid.UUID
	TransactionID uuid.UUID
}

func (a *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	if _, err := writer.Transactions.FindByID(ctx, a.OwnerID, a.TransactionID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrTransactionNotFound
		}
		return err
	}

	found, err := writer.Transactions.Delete(ctx, a.TransactionID)
	if err != nil {
		return err
	}
	if !found {
		return ErrTransactionNotFound
	}
	return nil
}
