package actions

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"

	"github.com/boxbank/boxbank-server/internal/storage"
)

// DeleteBox removes a box. Subboxes are kept and turned into roots; the
// box's balance simply disappears from the books, a known limitation of
// deletion.
type DeleteBox struct {
	OwnerID uuid.UUID
	BoxID   uuid.UUID
}

func (a *DeleteBox) Perform(ctx context.Context, writer *storage.Writer) error {
	target, err := writer.Boxes.FindByIDForUpdate(ctx, a.BoxID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrBoxNotFound
	}
	if err != nil {
		return err
	}
	if target.OwnerID != a.OwnerID {
		return ErrBoxNotFound
	}

	if err := writer.Boxes.OrphanChildren(ctx, a.BoxID); err != nil {
		return err
	}

	found, err := writer.Boxes.Delete(ctx, a.OwnerID, a.BoxID)
	if err != nil {
		return err
	}
	if !found {
		return ErrBoxNotFound
	}
	return nil
}
