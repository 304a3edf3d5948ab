package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/boxbank/boxbank-server/internal/storage/box"
)

// Box represents a budget envelope in the service layer. TargetValue and
// ParentBoxID are nil when unset.
type Box struct {
	ID               uuid.UUID
	Name             string
	ShortDescription string
	Balance          decimal.Decimal
	TargetValue      *int64
	ParentBoxID      *uuid.UUID
	CreatedAt        time.Time
}

// BoxCursor identifies a position in a paginated result set.
type BoxCursor struct {
	Position int
	Limit    int
}

func boxFromStorage(row *box.Box) Box {
	converted := Box{
		ID:               row.ID,
		Name:             row.Name,
		ShortDescription: row.ShortDescription,
		Balance:          row.Balance,
		CreatedAt:        row.CreatedAt,
	}
	if row.TargetValue.Valid {
		target := row.TargetValue.Int64
		converted.TargetValue = &target
	}
	if row.ParentBoxID.Valid {
		parent := row.ParentBoxID.UUID
		converted.ParentBoxID = &parent
	}
	return converted
}
