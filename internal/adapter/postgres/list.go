package postgres

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/buildline/crm-backend/internal/domain"
)

// Psql is the statement builder shared by all repositories.
var Psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ListSpec describes how a table answers a domain.ListFilter.
type ListSpec struct {
	// From is the FROM clause, joins included.
	From    string
	Columns []string

	SearchColumns []string
	// FullText, when set, is a tsvector expression used instead of ILIKE search.
	FullText string

	StatusColumn   string
	CategoryColumn string
	DateColumn     string

	// SortColumns maps API sort keys to SQL expressions.
	SortColumns  map[string]string
	DefaultSort  string
	DefaultOrder domain.SortOrder
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Where builds the filter predicate for f.
func (s ListSpec) Where(f domain.ListFilter) sq.And {
	where := sq.And{}

	if f.Search != "" {
		switch {
		case s.FullText != "":
			where = append(where, sq.Expr(s.FullText+" @@ plainto_tsquery('simple', ?)", f.Search))
		case len(s.SearchColumns) > 0:
			pattern := "%" + likeEscaper.Replace(f.Search) + "%"
			or := sq.Or{}
			for _, col := range s.SearchColumns {
				or = append(or, sq.ILike{col: pattern})
			}
			where = append(where, or)
		}
	}
	if f.Status != "" && s.StatusColumn != "" {
		where = append(where, sq.Eq{s.StatusColumn: f.Status})
	}
	if f.Category != "" && s.CategoryColumn != "" {
		where = append(where, sq.Eq{s.CategoryColumn: f.Category})
	}
	if start, end, ok := f.Range.Bounds(); ok && s.DateColumn != "" {
		where = append(where, sq.GtOrEq{s.DateColumn: start}, sq.LtOrEq{s.DateColumn: end})
	}
	return where
}

// Apply adds the filter predicate for f to b, if there is one.
func (s ListSpec) Apply(b sq.SelectBuilder, f domain.ListFilter) sq.SelectBuilder {
	if where := s.Where(f); len(where) > 0 {
		return b.Where(where)
	}
	return b
}

// OrderBy resolves the whitelisted sort expression for f. Unknown keys fall
// back to the default sort; a missing order falls back to the default order.
func (s ListSpec) OrderBy(f domain.ListFilter) string {
	col, ok := s.SortColumns[f.SortBy]
	if !ok {
		col = s.SortColumns[s.DefaultSort]
	}
	order := f.SortOrder
	if order == "" {
		order = s.DefaultOrder
	}
	if order == "" {
		order = domain.SortDesc
	}
	return col + " " + strings.ToUpper(string(order))
}

// List runs the paged query and the matching count query for f.
func List[T any](
	ctx context.Context,
	q Querier,
	spec ListSpec,
	f domain.ListFilter,
	scan func(pgx.Row) (T, error),
) (domain.Page[T], error) {
	f.Normalize()

	countSQL, countArgs, err := spec.Apply(Psql.Select("count(*)").From(spec.From), f).ToSql()
	if err != nil {
		return domain.Page[T]{}, fmt.Errorf("build count query: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return domain.Page[T]{}, fmt.Errorf("count %s: %w", spec.From, err)
	}

	listSQL, listArgs, err := spec.Apply(Psql.Select(spec.Columns...).From(spec.From), f).
		OrderBy(spec.OrderBy(f)).
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset())).
		ToSql()
	if err != nil {
		return domain.Page[T]{}, fmt.Errorf("build list query: %w", err)
	}

	items, err := Collect(ctx, q, listSQL, listArgs, scan)
	if err != nil {
		return domain.Page[T]{}, err
	}

	return domain.Page[T]{
		Items:      items,
		Pagination: domain.NewPagination(f.Page, f.Limit, total),
	}, nil
}

// Collect runs a query and scans every row. It never returns a nil slice.
func Collect[T any](ctx context.Context, q Querier, sql string, args []any, scan func(pgx.Row) (T, error)) ([]T, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (T, error) {
		return scan(row)
	})
	if err != nil {
		return nil, fmt.Errorf("scan rows: %w", err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// All returns up to limit rows matching f, ignoring paging. Rows are ordered
// by the ListSpec date column, oldest first.
func All[T any](
	ctx context.Context,
	q Querier,
	spec ListSpec,
	f domain.ListFilter,
	limit int,
	scan func(pgx.Row) (T, error),
) ([]T, error) {
	b := spec.Apply(Psql.Select(spec.Columns...).From(spec.From), f)
	if spec.DateColumn != "" {
		b = b.OrderBy(spec.DateColumn + " ASC")
	}
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}
	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	return Collect(ctx, q, sql, args, scan)
}
