package service

import (
	"errors"

	"github.com/boxbank/boxbank-server/internal/storage"
)

// ErrNotFound is returned by lookups when no row matches for the owner.
var ErrNotFound = errors.New("service: not found")

// Service holds the read-side services. Mutations do not live here; they
// run as operator actions.
type Service struct {
	Account     *AccountService
	Box         *BoxService
	Transaction *TransactionService
	Transfer    *TransferService
	Dashboard   *DashboardService
}

// NewService creates a new Service over the given storage.
func NewService(store *storage.Storage) *Service {
	return &Service{
		Account:     NewAccountService(store.Reader.Accounts),
		Box:         NewBoxService(store.Reader.Boxes),
		Transaction: NewTransactionService(store.Reader.Transactions),
		Transfer:    NewTransferService(store.Reader.Transfers),
		Dashboard:   NewDashboardService(store.Reader.Accounts, store.Reader.Transactions),
	}
}
