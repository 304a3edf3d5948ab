package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/boxbank/boxbank-server/internal/storage/account"
	"github.com/boxbank/boxbank-server/internal/storage/box"
	"github.com/boxbank/boxbank-server/internal/storage/transaction"
	"github.com/boxbank/boxbank-server/internal/storage/transfer"
)

// Writer bundles the per-entity writers over one database transaction, so
// a multi-row operation either lands completely or not at all.
type Writer struct {
	tx           bob.Tx
	Accounts     *account.Writer
	Boxes        *box.Writer
	Transactions *transaction.Writer
	Transfers    *transfer.Writer
}

func NewWriter(tx bob.Tx) Writer {
	return Writer{
		tx:           tx,
		Accounts:     account.NewWriter(tx),
		Boxes:        box.NewWriter(tx),
		Transactions: transaction.NewWriter(tx),
		Transfers:    transfer.NewWriter(tx),
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}
