package storage

import (
	"github.com/stephenafamo/bob"

	"github.com/boxbank/boxbank-server/internal/storage/account"
	"github.com/boxbank/boxbank-server/internal/storage/box"
	"github.com/boxbank/boxbank-server/internal/storage/transaction"
	"github.com/boxbank/boxbank-server/internal/storage/transfer"
)

type Reader struct {
	Accounts     *account.Reader
	Boxes        *box.Reader
	Transactions *transaction.Reader
	Transfers    *transfer.Reader
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{
		Accounts:     account.NewReader(exec),
		Boxes:        box.NewReader(exec),
		Transactions: transaction.NewReader(exec),
		Transfers:    transfer.NewReader(exec),
	}
}
