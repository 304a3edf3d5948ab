package account

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

type Writer struct {
	tx bob.Tx
	Reader
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

// FindByIDForUpdate loads an account under a row lock for the duration of
// the surrounding transaction. Owner checks are the caller's concern.
func (w *Writer) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Account, error) {
	q := psql.Select(
		sm.Columns(psql.Raw(columns)),
		sm.From("accounts"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.ForUpdate(),
	)

	return bob.One(ctx, w.tx, q, scan.StructMapper[*Account]())
}

// Create inserts a new account and returns its generated ID.
func (w *Writer) Create(ctx context.Context, create *AccountCreate) (uuid.UUID, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}

	q := psql.Insert(
		im.Into("accounts", "id", "owner_id", "name", "balance", "iban", "bic", "is_virtual"),
		im.Values(psql.Arg(id, create.OwnerID, create.Name, create.Balance, create.IBAN, create.BIC, create.IsVirtual)),
	)
	if _, err := bob.Exec(ctx, w.tx, q); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// Update rewrites the editable fields of one of the owner's accounts and
// reports whether a row matched.
func (w *Writer) Update(ctx context.Context, ownerID, id uuid.UUID, update *AccountUpdate) (bool, error) {
	q := psql.Update(
		um.Table("accounts"),
		um.SetCol("name").ToArg(update.Name),
		um.SetCol("iban").ToArg(update.IBAN),
		um.SetCol("bic").ToArg(update.BIC),
		um.SetCol("is_virtual").ToArg(update.IsVirtual),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
	)

	result, err := bob.Exec(ctx, w.tx, q)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	return affected > 0, err
}

// Delete removes one of the owner's accounts and reports whether a row
// matched. Transactions referencing the account are removed by the
// schema's cascade; their balance effects elsewhere are not reversed.
func (w *Writer) Delete(ctx context.Context, ownerID, id uuid.UUID) (bool, error) {
	q := psql.Delete(
		dm.From("accounts"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		dm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
	)

	result, err := bob.Exec(ctx, w.tx, q)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	return affected > 0, err
}

// Credit adds amount to the stored balance as a relative update, safe
// against concurrent writers.
func (w *Writer) Credit(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return ErrNonPositiveAmount
	}
	return w.adjustBalance(ctx, id, amount)
}

// Debit subtracts amount from the stored balance. Overdraft is permitted.
func (w *Writer) Debit(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return ErrNonPositiveAmount
	}
	return w.adjustBalance(ctx, id, amount.Neg())
}

func (w *Writer) adjustBalance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error {
	q := psql.Update(
		um.Table("accounts"),
		um.SetCol("balance").To(psql.Raw("balance + ?", delta)),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	_, err := bob.Exec(ctx, w.tx, q)
	return err
}
