package transfer

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
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

// Insert records a transfer and returns its generated ID. Callers go
// through the transfer-boxes action, which also moves the balances.
func (w *Writer) Insert(ctx context.Context, create *BoxTransferCreate) (uuid.UUID, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}

	q := psql.Insert(
		im.Into("box_transfers", "id", "from_box_id", "to_box_id", "amount", "date"),
		im.Values(psql.Arg(id, create.FromBoxID, create.ToBoxID, create.Amount, create.Date)),
	)
	if _, err := bob.Exec(ctx, w.tx, q); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}
