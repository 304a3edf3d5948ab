package actions

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/boxbank/boxbank-server/internal/storage"
	"github.com/boxbank/boxbank-server/internal/storage/transaction"
)

// UpdateTransactionDetails rewrites the non-monetary fields of a ledger
// row. Amount, account, and box are immutable; changing them would desync
// the balances they already moved.
type UpdateTransactionDetails struct {
	OwnerID          uuid.UUID
	TransactionID    uuid.UUID
	OtherParty       string
	Date             time.Time
	ShortDescription string
}

func (a *UpdateTransactionDetails) Perform(ctx context.Context, writer *storage.Writer) error {
	// Ownership is transitive through the account, so resolve the row
	// owner-scoped before touching it.
	if _, err := writer.Transactions.FindByID(ctx, a.OwnerID, a.TransactionID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrTransactionNotFound
		}
		return err
	}

	found, err := writer.Transactions.UpdateDetails(ctx, a.TransactionID, &transaction.TransactionDetailsUpdate{
		OtherParty:       a.OtherParty,
		Date:             a.Date,
		ShortDescription: a.ShortDescription,
	})
	if err != nil {
		return err
	}
	if !found {
		return ErrTransactionNotFound
	}
	return nil
}
