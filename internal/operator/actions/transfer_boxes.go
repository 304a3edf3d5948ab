package actions

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/boxbank/boxbank-server/internal/storage"
	"github.com/boxbank/boxbank-server/internal/storage/transfer"
)

// TransferBoxes moves an amount from one box to another and records the
// transfer, all in one database transaction. Source and destination may be
// the same box; that nets to zero and is permitted.
type TransferBoxes struct {
	OwnerID   uuid.UUID
	FromBoxID uuid.UUID
	ToBoxID   uuid.UUID
	Amount    decimal.Decimal
	Date      time.Time

	// CreatedID is set on success.
	CreatedID uuid.UUID
}

func (a *TransferBoxes) Perform(ctx context.Context, writer *storage.Writer) error {
	if a.Amount.Sign() < 0 {
		return ErrNegativeTransfer
	}

	// Lock both boxes in byte order of the IDs so two concurrent
	// transfers in opposite directions cannot deadlock each other.
	boxIDs := []uuid.UUID{a.FromBoxID, a.ToBoxID}
	sortIDs(boxIDs)
	for _, boxID := range boxIDs {
		box, err := writer.Boxes.FindByIDForUpdate(ctx, boxID)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrBoxNotFound
		}
		if err != nil {
			return err
		}
		if box.OwnerID != a.OwnerID {
			return ErrBoxNotFound
		}
	}

	id, err := writer.Transfers.Insert(ctx, &transfer.BoxTransferCreate{
		FromBoxID: a.FromBoxID,
		ToBoxID:   a.ToBoxID,
		Amount:    a.Amount,
		Date:      a.Date,
	})
	if err != nil {
		return err
	}
	a.CreatedID = id

	// A zero transfer is a pure record; the balances stay put.
	if a.Amount.Sign() == 0 {
		return nil
	}

	if err := writer.Boxes.Debit(ctx, a.FromBoxID, a.Amount); err != nil {
		return err
	}
	return writer.Boxes.Credit(ctx, a.ToBoxID, a.Amount)
}
