package account

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWriter(t *testing.T) (*Writer, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mock.ExpectBegin()
	tx, err := bob.NewDB(db).BeginTx(context.Background(), nil)
	require.NoError(t, err)

	return NewWriter(tx), mock
}

func TestCredit_AppliesRelativeUpdate(t *testing.T) {
	writer, mock := newTestWriter(t)
	id := uuid.Must(uuid.NewV4())
	amount := decimal.RequireFromString("12.50")

	mock.ExpectExec(`UPDATE accounts SET (.+)balance \+ \$1`).
		WithArgs(amount, id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, writer.Credit(context.Background(), id, amount))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDebit_AppliesRelativeUpdate(t *testing.T) {
	writer, mock := newTestWriter(t)
	id := uuid.Must(uuid.NewV4())
	amount := decimal.RequireFromString("12.50")

	mock.ExpectExec(`UPDATE accounts SET (.+)balance \+ \$1`).
		WithArgs(amount.Neg(), id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, writer.Debit(context.Background(), id, amount))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreditAndDebit_RejectNonPositiveAmounts(t *testing.T) {
	writer, mock := newTestWriter(t)
	id := uuid.Must(uuid.NewV4())

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.RequireFromString("-1")} {
		assert.ErrorIs(t, writer.Credit(context.Background(), id, amount), ErrNonPositiveAmount)
		assert.ErrorIs(t, writer.Debit(context.Background(), id, amount), ErrNonPositiveAmount)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}
