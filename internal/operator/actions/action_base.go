package actions

import (
	"bytes"
	"context"
	"errors"
	"sort"

	"github.com/gofrs/uuid/v5"

	"github.com/boxbank/boxbank-server/internal/storage"
)

// IAction is one unit of work performed by an operator worker inside a
// single database transaction.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}

// Not-found errors cover both truly absent rows and rows owned by someone
// else; the two cases are deliberately indistinguishable to the caller.
var (
	ErrAccountNotFound     = errors.New("actions: account not found")
	ErrBoxNotFound         = errors.New("actions: box not found")
	ErrTransactionNotFound = errors.New("actions: transaction not found")
	ErrParentBoxCycle      = errors.New("actions: parent box chain forms a cycle")
	ErrNegativeTransfer    = errors.New("actions: transfer amount must not be negative")
)

// sortIDs orders UUIDs by their byte representation. Actions that lock
// several rows of one table take the locks in this order, so concurrent
// actions over the same rows queue up instead of deadlocking.
func sortIDs(ids []uuid.UUID) {
	sort.Slice(ids, func(i, j int) bool {
		return bytes.Compare(ids[i][:], ids[j][:]) < 0
	})
}
