package actions

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"

	"github.com/boxbank/boxbank-server/internal/storage"
	"github.com/boxbank/boxbank-server/internal/storage/box"
)

type CreateBox struct {
	OwnerID          uuid.UUID
	Name             string
	ShortDescription string
	TargetValue      *int64
	ParentBoxID      *uuid.UUID

	// CreatedID is set on success.
	CreatedID uuid.UUID
}

func (a *CreateBox) Perform(ctx context.Context, writer *storage.Writer) error {
	create := &box.BoxCreate{
		OwnerID:          a.OwnerID,
		Name:             a.Name,
		ShortDescription: a.ShortDescription,
	}
	if a.TargetValue != nil {
		create.TargetValue = sql.NullInt64{Int64: *a.TargetValue, Valid: true}
	}

	if a.ParentBoxID != nil {
		parent, err := writer.Boxes.FindByIDForUpdate(ctx, *a.ParentBoxID)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrBoxNotFound
		}
		if err != nil {
			return err
		}
		if parent.OwnerID != a.OwnerID {
			return ErrBoxNotFound
		}
		create.ParentBoxID = uuid.NullUUID{UUID: parent.ID, Valid: true}
	}

	id, err := writer.Boxes.Create(ctx, create)
	if err != nil {
		return err
	}

	a.CreatedID = id
	return nil
}
