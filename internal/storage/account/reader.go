package account

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

const columns = "id, owner_id, name, balance, iban, bic, is_virtual, created_at"

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// List returns up to filter.Limit+1 accounts so the caller can detect a
// next page, ordered by name then ID for a stable paging order.
func (r *Reader) List(ctx context.Context, ownerID uuid.UUID, filter *AccountFilter) ([]*Account, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(psql.Raw(columns)),
		sm.From("accounts"),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
		sm.OrderBy("name").Asc(),
		sm.OrderBy("id").Asc(),
	}
	if filter != nil {
		if filter.Limit > 0 {
			queryMods = append(queryMods, sm.Limit(filter.Limit+1))
		}
		if filter.Offset > 0 {
			queryMods = append(queryMods, sm.Offset(filter.Offset))
		}
	}

	return bob.All(ctx, r.exec, psql.Select(queryMods...), scan.StructMapper[*Account]())
}

// FindByID retrieves one of the owner's accounts by primary key.
func (r *Reader) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*Account, error) {
	q := psql.Select(
		sm.Columns(psql.Raw(columns)),
		sm.From("accounts"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
	)

	return bob.One(ctx, r.exec, q, scan.StructMapper[*Account]())
}

// TotalBalance sums the balances of all of the owner's accounts,
// virtual ones included.
func (r *Reader) TotalBalance(ctx context.Context, ownerID uuid.UUID) (decimal.Decimal, error) {
	q := psql.Select(
		sm.Columns(psql.Raw("coalesce(sum(balance), 0)")),
		sm.From("accounts"),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
	)

	return bob.One(ctx, r.exec, q, scan.SingleColumnMapper[decimal.Decimal])
}
