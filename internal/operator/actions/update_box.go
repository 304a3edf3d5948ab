package actions

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"

	"github.com/boxbank/boxbank-server/internal/storage"
	"github.com/boxbank/boxbank-server/internal/storage/box"
)

// UpdateBox rewrites a box's editable fields. Re-parenting is refused when
// the new parent chain would lead back to the box itself.
type UpdateBox struct {
	OwnerID          uuid.UUID
	BoxID            uuid.UUID
	Name             string
	ShortDescription string
	TargetValue      *int64
	ParentBoxID      *uuid.UUID
}

func (a *UpdateBox) Perform(ctx context.Context, writer *storage.Writer) error {
	update := &box.BoxUpdate{
		Name:             a.Name,
		ShortDescription: a.ShortDescription,
	}
	if a.TargetValue != nil {
		update.TargetValue = sql.NullInt64{Int64: *a.TargetValue, Valid: true}
	}

	if a.ParentBoxID != nil {
		if err := a.checkParentChain(ctx, writer); err != nil {
			return err
		}
		update.ParentBoxID = uuid.NullUUID{UUID: *a.ParentBoxID, Valid: true}
	}

	found, err := writer.Boxes.Update(ctx, a.OwnerID, a.BoxID, update)
	if err != nil {
		return err
	}
	if !found {
		return ErrBoxNotFound
	}
	return nil
}

// checkParentChain walks from the proposed parent to the root, locking
// each box on the way, and fails when the chain reaches the box being
// updated or an ancestor owned by someone else.
func (a *UpdateBox) checkParentChain(ctx context.Context, writer *storage.Writer) error {
	current := *a.ParentBoxID
	for {
		if current == a.BoxID {
			return ErrParentBoxCycle
		}

		ancestor, err := writer.Boxes.FindByIDForUpdate(ctx, current)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrBoxNotFound
		}
		if err != nil {
			return err
		}
		if ancestor.OwnerID != a.OwnerID {
			return ErrBoxNotFound
		}

		if !ancestor.ParentBoxID.Valid {
			return nil
		}
		current = ancestor.ParentBoxID.UUID
	}
}
