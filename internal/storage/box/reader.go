package box

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

const columns = "id, owner_id, name, short_description, balance, target_value, parent_box_id, created_at"

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// List returns up to filter.Limit+1 of the owner's boxes so the caller can
// detect a next page, ordered by name then ID.
func (r *Reader) List(ctx context.Context, ownerID uuid.UUID, filter *BoxFilter) ([]*Box, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(psql.Raw(columns)),
		sm.From("boxes"),
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

	return bob.All(ctx, r.exec, psql.Select(queryMods...), scan.StructMapper[*Box]())
}

// FindByID retrieves one of the owner's boxes by primary key.
func (r *Reader) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*Box, error) {
	q := psql.Select(
		sm.Columns(psql.Raw(columns)),
		sm.From("boxes"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
	)

	return bob.One(ctx, r.exec, q, scan.StructMapper[*Box]())
}
