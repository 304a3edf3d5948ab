package transfer

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

// Transfers carry no owner column; ownership is transitive through the
// source box.
const columns = "box_transfers.id, box_transfers.from_box_id, box_transfers.to_box_id, " +
	"box_transfers.amount, box_transfers.date, box_transfers.created_at"

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// List returns up to filter.Limit+1 of the owner's transfers so the caller
// can detect a next page, newest first.
func (r *Reader) List(ctx context.Context, ownerID uuid.UUID, filter *BoxTransferFilter) ([]*BoxTransfer, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(psql.Raw(columns)),
		sm.From("box_transfers"),
		sm.InnerJoin("boxes").On(psql.Raw("boxes.id = box_transfers.from_box_id")),
		sm.Where(psql.Quote("boxes", "owner_id").EQ(psql.Arg(ownerID))),
	}
	if filter != nil {
		if filter.Limit > 0 {
			queryMods = append(queryMods, sm.Limit(filter.Limit+1))
		}
		if filter.Offset > 0 {
			queryMods = append(queryMods, sm.Offset(filter.Offset))
		}
	}
	queryMods = append(queryMods,
		sm.OrderBy(psql.Quote("box_transfers", "date")).Desc(),
		sm.OrderBy(psql.Quote("box_transfers", "created_at")).Desc(),
		sm.OrderBy(psql.Quote("box_transfers", "id")).Desc(),
	)

	return bob.All(ctx, r.exec, psql.Select(queryMods...), scan.StructMapper[*BoxTransfer]())
}
