package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/boxbank/boxbank-server/internal/storage/transaction"
)

const defaultTransactionLimit = 20

// transactionReader is the storage surface this service consumes.
type transactionReader interface {
	List(ctx context.Context, ownerID uuid.UUID, filter *transaction.TransactionFilter) ([]*transaction.Transaction, error)
}

// TransactionService handles transaction read-side logic.
type TransactionService struct {
	reader transactionReader
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(reader transactionReader) *TransactionService {
	return &TransactionService{reader: reader}
}

// ListTransactions returns a page of the owner's ledger rows, newest
// first, optionally restricted to credits or debits, the two signed
// views over the single transactions store.
func (s *TransactionService) ListTransactions(ctx context.Context, ownerID uuid.UUID, direction transaction.Direction, cursor *TransactionCursor) ([]Transaction, *TransactionCursor, error) {
	limit := defaultTransactionLimit
	offset := 0
	var maxCreationTime *time.Time
	if cursor != nil {
		limit = cursor.Limit
		offset = cursor.Position
		maxCreationTime = &cursor.MaxCreationTime
	}

	rows, err := s.reader.List(ctx, ownerID, &transaction.TransactionFilter{
		Direction:       direction,
		Limit:           limit,
		Offset:          offset,
		MaxCreationTime: maxCreationTime,
	})
	if err != nil {
		return nil, nil, err
	}

	if len(rows) == 0 {
		return nil, nil, nil
	}

	var nextCursor *TransactionCursor
	if len(rows) > limit {
		rows = rows[:limit]

		cursorMaxCreationTime := rows[0].CreatedAt
		if maxCreationTime != nil {
			cursorMaxCreationTime = *maxCreationTime
		}

		nextCursor = &TransactionCursor{
			Position:        offset + limit,
			Limit:           limit,
			MaxCreationTime: cursorMaxCreationTime,
		}
	}

	convertedTransactions := make([]Transaction, len(rows))
	for i, row := range rows {
		convertedTransactions[i] = transactionFromStorage(row)
	}

	return convertedTransactions, nextCursor, nil
}
