package transaction

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

// Transactions carry no owner column; ownership is transitive through the
// account, so every read joins accounts and filters on its owner_id.
const columns = "transactions.id, transactions.account_id, transactions.box_id, " +
	"transactions.other_party, transactions.amount, transactions.date, " +
	"transactions.short_description, transactions.created_at"

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

func ownerScopedMods(ownerID uuid.UUID) []bob.Mod[*dialect.SelectQuery] {
	return []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(psql.Raw(columns)),
		sm.From("transactions"),
		sm.InnerJoin("accounts").On(psql.Raw("accounts.id = transactions.account_id")),
		sm.Where(psql.Quote("accounts", "owner_id").EQ(psql.Arg(ownerID))),
	}
}

// List returns up to filter.Limit+1 of the owner's ledger rows so the
// caller can detect a next page, newest first.
func (r *Reader) List(ctx context.Context, ownerID uuid.UUID, filter *TransactionFilter) ([]*Transaction, error) {
	queryMods := ownerScopedMods(ownerID)
	if filter != nil {
		switch filter.Direction {
		case DirectionCredits:
			queryMods = append(queryMods, sm.Where(psql.Raw("transactions.amount > 0")))
		case DirectionDebits:
			queryMods = append(queryMods, sm.Where(psql.Raw("transactions.amount < 0")))
		}
		if filter.MaxCreationTime != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("transactions", "created_at").LTE(psql.Arg(*filter.MaxCreationTime))))
		}
		if filter.Limit > 0 {
			queryMods = append(queryMods, sm.Limit(filter.Limit+1))
		}
		if filter.Offset > 0 {
			queryMods = append(queryMods, sm.Offset(filter.Offset))
		}
	}
	queryMods = append(queryMods,
		sm.OrderBy(psql.Quote("transactions", "date")).Desc(),
		sm.OrderBy(psql.Quote("transactions", "created_at")).Desc(),
		sm.OrderBy(psql.Quote("transactions", "id")).Desc(),
	)

	return bob.All(ctx, r.exec, psql.Select(queryMods...), scan.StructMapper[*Transaction]())
}

// ListAll returns every ledger row of the owner, newest first. Used by the
// dashboard aggregation, which needs the full history.
func (r *Reader) ListAll(ctx context.Context, ownerID uuid.UUID) ([]*Transaction, error) {
	queryMods := append(ownerScopedMods(ownerID),
		sm.OrderBy(psql.Quote("transactions", "date")).Desc(),
		sm.OrderBy(psql.Quote("transactions", "created_at")).Desc(),
	)

	return bob.All(ctx, r.exec, psql.Select(queryMods...), scan.StructMapper[*Transaction]())
}

// FindByID retrieves one of the owner's ledger rows by primary key.
func (r *Reader) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*Transaction, error) {
	queryMods := append(ownerScopedMods(ownerID),
		sm.Where(psql.Quote("transactions", "id").EQ(psql.Arg(id))),
	)

	return bob.One(ctx, r.exec, psql.Select(queryMods...), scan.StructMapper[*Transaction]())
}
