package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"

	"github.com/boxbank/boxbank-server/internal/storage/box"
)

const defaultBoxLimit = 20

// boxReader is the storage surface this service consumes.
type boxReader interface {
	List(ctx context.Context, ownerID uuid.UUID, filter *box.BoxFilter) ([]*box.Box, error)
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*box.Box, error)
}

// BoxService handles box read-side logic.
type BoxService struct {
	reader boxReader
}

// NewBoxService creates a new BoxService.
func NewBoxService(reader boxReader) *BoxService {
	return &BoxService{reader: reader}
}

// GetBox retrieves one of the owner's boxes by ID.
func (s *BoxService) GetBox(ctx context.Context, ownerID, id uuid.UUID) (*Box, error) {
	row, err := s.reader.FindByID(ctx, ownerID, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	converted := boxFromStorage(row)
	return &converted, nil
}

// ListBoxes returns a page of the owner's boxes using cursor pagination.
func (s *BoxService) ListBoxes(ctx context.Context, ownerID uuid.UUID, cursor *BoxCursor) ([]Box, *BoxCursor, error) {
	limit := defaultBoxLimit
	offset := 0
	if cursor != nil {
		limit = cursor.Limit
		offset = cursor.Position
	}

	rows, err := s.reader.List(ctx, ownerID, &box.BoxFilter{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, nil, err
	}

	if len(rows) == 0 {
		return nil, nil, nil
	}

	var nextCursor *BoxCursor
	if len(rows) > limit {
		rows = rows[:limit]
		nextCursor = &BoxCursor{
			Position: offset + limit,
			Limit:    limit,
		}
	}

	convertedBoxes := make([]Box, len(rows))
	for i, row := range rows {
		convertedBoxes[i] = boxFromStorage(row)
	}

	return convertedBoxes, nextCursor, nil
}
