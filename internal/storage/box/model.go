package box

import (
	"database/sql"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// ErrNonPositiveAmount is a caller contract violation: Credit and Debit
// take strictly positive magnitudes, the sign is decided upstream.
var ErrNonPositiveAmount = errors.New("box: credit/debit amount must be strictly positive")

// Box represents a budget envelope. TargetValue, when set, is the amount
// the owner considers the box "full" at; it is an indication, not a limit.
type Box struct {
	ID               uuid.UUID       `db:"id"`
	OwnerID          uuid.UUID       `db:"owner_id"`
	Name             string          `db:"name"`
	ShortDescription string          `db:"short_description"`
	Balance          decimal.Decimal `db:"balance"`
	TargetValue      sql.NullInt64   `db:"target_value"`
	ParentBoxID      uuid.NullUUID   `db:"parent_box_id"`
	CreatedAt        time.Time       `db:"created_at"`
}

// BoxCreate is the input for creating a new box.
type BoxCreate struct {
	OwnerID          uuid.UUID
	Name             string
	ShortDescription string
	TargetValue      sql.NullInt64
	ParentBoxID      uuid.NullUUID
}

// BoxUpdate carries the editable fields. Balance changes only through
// Credit and Debit.
type BoxUpdate struct {
	Name             string
	ShortDescription string
	TargetValue      sql.NullInt64
	ParentBoxID      uuid.NullUUID
}

// BoxFilter specifies paging for listing boxes.
type BoxFilter struct {
	Limit  int
	Offset int
}
