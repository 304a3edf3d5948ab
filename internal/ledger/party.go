// Package ledger holds the double-entry core: the party variant, the
// validation of a proposed transaction, and the derivation of the signed
// ledger legs it produces. It is pure; applying the legs to storage is the
// operator's job.
package ledger

import (
	"errors"

	"github.com/gofrs/uuid/v5"
)

var (
	// ErrEmptyParty means neither a tracked account nor an external name
	// was given for one side of the transaction.
	ErrEmptyParty = errors.New("ledger: party must be a tracked account or an external name")
	// ErrAmbiguousParty means both were given.
	ErrAmbiguousParty = errors.New("ledger: party cannot be both a tracked account and an external name")
)

type partyKind int8

const (
	partyTracked partyKind = iota
	partyExternal
)

// Party is one side of a transaction: either a tracked account or a
// free-text external counterparty. The zero Party is invalid; construct
// through NewParty, TrackedParty, or ExternalParty.
type Party struct {
	kind      partyKind
	accountID uuid.UUID
	name      string
}

// NewParty builds a Party from the optional pair a request carries.
// Exactly one of accountID and name must be set.
func NewParty(accountID uuid.UUID, name string) (Party, error) {
	hasAccount := accountID != uuid.Nil
	hasName := name != ""

	switch {
	case hasAccount && hasName:
		return Party{}, ErrAmbiguousParty
	case !hasAccount && !hasName:
		return Party{}, ErrEmptyParty
	case hasAccount:
		return TrackedParty(accountID), nil
	default:
		return ExternalParty(name), nil
	}
}

func TrackedParty(accountID uuid.UUID) Party {
	return Party{kind: partyTracked, accountID: accountID}
}

func ExternalParty(name string) Party {
	return Party{kind: partyExternal, name: name}
}

// Tracked returns the account ID when the party is a tracked account.
func (p Party) Tracked() (uuid.UUID, bool) {
	return p.accountID, p.kind == partyTracked
}

// External returns the counterparty name when the party is external.
func (p Party) External() (string, bool) {
	return p.name, p.kind == partyExternal
}
