package transaction

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/um"
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

// Insert creates a new ledger row and returns its generated ID. Callers go
// through the record-transaction action; inserting a row without applying
// its balance effects corrupts the books.
func (w *Writer) Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}

	q := psql.Insert(
		im.Into("transactions", "id", "account_id", "box_id", "other_party", "amount", "date", "short_description"),
		im.Values(psql.Arg(id, create.AccountID, create.BoxID, create.OtherParty, create.Amount, create.Date, create.ShortDescription)),
	)
	if _, err := bob.Exec(ctx, w.tx, q); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// UpdateDetails rewrites the non-monetary fields of a ledger row and
// reports whether a row matched.
func (w *Writer) UpdateDetails(ctx context.Context, id uuid.UUID, update *TransactionDetailsUpdate) (bool, error) {
	q := psql.Update(
		um.Table("transactions"),
		um.SetCol("other_party").ToArg(update.OtherParty),
		um.SetCol("date").ToArg(update.Date),
		um.SetCol("short_description").ToArg(update.ShortDescription),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	result, err := bob.Exec(ctx, w.tx, q)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	return affected > 0, err
}

// Delete removes a ledger row and reports whether a row matched. The
// balance effects of the row are not reversed.
func (w *Writer) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	q := psql.Delete(
		dm.From("transactions"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	result, err := bob.Exec(ctx, w.tx, q)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	return affected > 0, err
}
