package ledger

import (
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

var (
	// ErrNoTrackedAccount means both sides are external names; such a
	// transaction would touch no balance and is rejected.
	ErrNoTrackedAccount = errors.New("ledger: at least one side must be a tracked account")
	// ErrSelfTransfer means source and destination are the same tracked
	// account; use a box transfer instead.
	ErrSelfTransfer = errors.New("ledger: source and destination account are the same")
	// ErrNonPositiveAmount means the submitted amount was zero or negative.
	// The sign of the stored legs is derived, never submitted.
	ErrNonPositiveAmount = errors.New("ledger: amount must be strictly positive")
)

// Request is a proposed double-entry transaction: money moves from Source
// to Destination, the given amount is always submitted positive, and every
// resulting leg is filed under the same box.
type Request struct {
	Source           Party
	Destination      Party
	Amount           decimal.Decimal
	BoxID            uuid.UUID
	Date             time.Time
	ShortDescription string
}

// Leg is one signed ledger row to create: a debit (negative amount)
// against the source account or a credit (positive amount) against the
// destination account. Other is the opposite party of the leg.
type Leg struct {
	AccountID uuid.UUID
	Amount    decimal.Decimal
	Other     Party
}

// Debit reports whether the leg removes money from its account.
func (l Leg) Debit() bool {
	return l.Amount.IsNegative()
}

// Validate checks the request against the double-entry rules. Parties are
// assumed well-formed (NewParty enforces the exactly-one-of rule).
func (r Request) Validate() error {
	sourceID, sourceTracked := r.Source.Tracked()
	destinationID, destinationTracked := r.Destination.Tracked()

	if !sourceTracked && !destinationTracked {
		return ErrNoTrackedAccount
	}
	if sourceTracked && destinationTracked && sourceID == destinationID {
		return ErrSelfTransfer
	}
	if r.Amount.Sign() <= 0 {
		return ErrNonPositiveAmount
	}
	return nil
}

// Legs validates the request and derives the ledger rows it produces:
// a debit leg when the source is tracked, a credit leg when the
// destination is tracked, both when both are.
func (r Request) Legs() ([]Leg, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	magnitude := r.Amount.Abs()
	var legs []Leg

	if sourceID, ok := r.Source.Tracked(); ok {
		legs = append(legs, Leg{
			AccountID: sourceID,
			Amount:    magnitude.Neg(),
			Other:     r.Destination,
		})
	}
	if destinationID, ok := r.Destination.Tracked(); ok {
		legs = append(legs, Leg{
			AccountID: destinationID,
			Amount:    magnitude,
			Other:     r.Source,
		})
	}

	return legs, nil
}
