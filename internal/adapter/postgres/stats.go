package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/buildline/crm-backend/internal/domain"
)

// Bucket is one group of a count aggregation.
type Bucket = domain.Bucket

// CountAll returns the row count of table.
func CountAll(ctx context.Context, q Querier, table string) (int, error) {
	sql, args, err := Psql.Select("count(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count: %w", err)
	}
	var n int
	if err := q.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}

// CountBy groups table rows by column. column must be a trusted identifier.
func CountBy(ctx context.Context, q Querier, table, column string) ([]Bucket, error) {
	sql, args, err := Psql.Select(column+"::text", "count(*)").
		From(table).
		GroupBy(column).
		OrderBy(column).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build group count: %w", err)
	}
	return Collect(ctx, q, sql, args, scanBucket)
}

// CountByMonth groups rows with dateColumn >= since by calendar month,
// keyed "2006-01".
func CountByMonth(ctx context.Context, q Querier, table, dateColumn string, since time.Time) ([]Bucket, error) {
	month := "to_char(date_trunc('month', " + dateColumn + "), 'YYYY-MM')"
	sql, args, err := Psql.Select(month, "count(*)").
		From(table).
		Where(dateColumn+" >= ?", since).
		GroupBy(month).
		OrderBy(month).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build monthly count: %w", err)
	}
	return Collect(ctx, q, sql, args, scanBucket)
}

func scanBucket(row pgx.Row) (Bucket, error) {
	var b Bucket
	err := row.Scan(&b.Key, &b.Count)
	return b, err
}
