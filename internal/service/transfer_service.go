package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/boxbank/boxbank-server/internal/storage/transfer"
)

const defaultTransferLimit = 20

// BoxTransfer represents a recorded box-to-box movement in the service
// layer.
type BoxTransfer struct {
	ID        uuid.UUID
	FromBoxID uuid.UUID
	ToBoxID   uuid.UUID
	Amount    decimal.Decimal
	Date      time.Time
	CreatedAt time.Time
}

// TransferCursor identifies a position in a paginated result set.
type TransferCursor struct {
	Position int
	Limit    int
}

// transferReader is the storage surface this service consumes.
type transferReader interface {
	List(ctx context.Context, ownerID uuid.UUID, filter *transfer.BoxTransferFilter) ([]*transfer.BoxTransfer, error)
}

// TransferService handles box-transfer read-side logic.
type TransferService struct {
	reader transferReader
}

// NewTransferService creates a new TransferService.
func NewTransferService(reader transferReader) *TransferService {
	return &TransferService{reader: reader}
}

// ListTransfers returns a page of the owner's box transfers, newest first.
func (s *TransferService) ListTransfers(ctx context.Context, ownerID uuid.UUID, cursor *TransferCursor) ([]BoxTransfer, *TransferCursor, error) {
	limit := defaultTransferLimit
	offset := 0
	if cursor != nil {
		limit = cursor.Limit
		offset = cursor.Position
	}

	rows, err := s.reader.List(ctx, ownerID, &transfer.BoxTransferFilter{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, nil, err
	}

	if len(rows) == 0 {
		return nil, nil, nil
	}

	var nextCursor *TransferCursor
	if len(rows) > limit {
		rows = rows[:limit]
		nextCursor = &TransferCursor{
			Position: offset + limit,
			Limit:    limit,
		}
	}

	convertedTransfers := make([]BoxTransfer, len(rows))
	for i, row := range rows {
		convertedTransfers[i] = BoxTransfer{
			ID:        row.ID,
			FromBoxID: row.FromBoxID,
			ToBoxID:   row.ToBoxID,
			Amount:    row.Amount,
			Date:      row.Date,
			CreatedAt: row.CreatedAt,
		}
	}

	return convertedTransfers, nextCursor, nil
}
