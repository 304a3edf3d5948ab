package transfer

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// BoxTransfer records a movement of money between two boxes of the same
// owner. The amount is non-negative; direction is carried by the from/to
// references.
type BoxTransfer struct {
	ID        uuid.UUID       `db:"id"`
	FromBoxID uuid.UUID       `db:"from_box_id"`
	ToBoxID   uuid.UUID       `db:"to_box_id"`
	Amount    decimal.Decimal `db:"amount"`
	Date      time.Time       `db:"date"`
	CreatedAt time.Time       `db:"created_at"`
}

// BoxTransferCreate is the input for recording a transfer.
type BoxTransferCreate struct {
	FromBoxID uuid.UUID
	ToBoxID   uuid.UUID
	Amount    decimal.Decimal
	Date      time.Time
}

// BoxTransferFilter specifies paging for listing transfers.
type BoxTransferFilter struct {
	Limit  int
	Offset int
}
