package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/boxbank/boxbank-server/internal/storage/account"
)

const defaultAccountLimit = 20

// accountReader is the storage surface this service consumes.
type accountReader interface {
	List(ctx context.Context, ownerID uuid.UUID, filter *account.AccountFilter) ([]*account.Account, error)
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*account.Account, error)
	TotalBalance(ctx context.Context, ownerID uuid.UUID) (decimal.Decimal, error)
}

// AccountService handles account read-side logic.
type AccountService struct {
	reader accountReader
}

// NewAccountService creates a new AccountService.
func NewAccountService(reader accountReader) *AccountService {
	return &AccountService{reader: reader}
}

// GetAccount retrieves one of the owner's accounts by ID.
func (s *AccountService) GetAccount(ctx context.Context, ownerID, id uuid.UUID) (*Account, error) {
	row, err := s.reader.FindByID(ctx, ownerID, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	converted := accountFromStorage(row)
	return &converted, nil
}

// ListAccounts returns a page of the owner's accounts using cursor
// pagination.
func (s *AccountService) ListAccounts(ctx context.Context, ownerID uuid.UUID, cursor *AccountCursor) ([]Account, *AccountCursor, error) {
	limit := defaultAccountLimit
	offset := 0
	if cursor != nil {
		limit = cursor.Limit
		offset = cursor.Position
	}

	rows, err := s.reader.List(ctx, ownerID, &account.AccountFilter{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, nil, err
	}

	if len(rows) == 0 {
		return nil, nil, nil
	}

	var nextCursor *AccountCursor
	if len(rows) > limit {
		rows = rows[:limit]
		nextCursor = &AccountCursor{
			Position: offset + limit,
			Limit:    limit,
		}
	}

	convertedAccounts := make([]Account, len(rows))
	for i, row := range rows {
		convertedAccounts[i] = accountFromStorage(row)
	}

	return convertedAccounts, nextCursor, nil
}

// TotalBalance sums the balances of all of the owner's accounts.
func (s *AccountService) TotalBalance(ctx context.Context, ownerID uuid.UUID) (decimal.Decimal, error) {
	return s.reader.TotalBalance(ctx, ownerID)
}
