package report

import (
	"context"

	"github.com/samber/lo"

	"github.com/buildline/crm-backend/internal/domain"
)

// NotAvailable fills cells whose value and fallback are both empty.
const NotAvailable = "N/A"

// column maps one record field to a report cell. Value reads the field
// directly; Fallback computes a substitute when the field is empty.
// Field drives formatting: names containing "value" or "salary" render as
// currency.
type column[T any] struct {
	Title    string
	Field    string
	Value    func(T) any
	Fallback func(T) any
}

// descriptor declares how one module is reported.
type descriptor[T any] struct {
	Key       domain.ReportModule
	Title     string
	DateField string
	Columns   []column[T]
	Fetch     func(ctx context.Context, rng domain.DateRange, limit int) ([]T, error)
	Sample    func() []T
}

// module erases the record type so descriptors of different entities can
// share one registry.
type module interface {
	key() domain.ReportModule
	title() string
	dateField() string
	columnTitles() []string
	rows(ctx context.Context, rng domain.DateRange, limit int) ([][]string, error)
	sampleRows() [][]string
}

func (d descriptor[T]) key() domain.ReportModule { return d.Key }
func (d descriptor[T]) title() string            { return d.Title }
func (d descriptor[T]) dateField() string        { return d.DateField }

func (d descriptor[T]) columnTitles() []string {
	return lo.Map(d.Columns, func(c column[T], _ int) string { return c.Title })
}

func (d descriptor[T]) rows(ctx context.Context, rng domain.DateRange, limit int) ([][]string, error) {
	records, err := d.Fetch(ctx, rng, limit)
	if err != nil {
		return nil, err
	}
	return assemble(d.Columns, records), nil
}

func (d descriptor[T]) sampleRows() [][]string {
	if d.Sample == nil {
		return [][]string{}
	}
	return assemble(d.Columns, d.Sample())
}

// assemble renders records into rows of display strings, one row per record
// and one cell per column. Cells are never empty.
func assemble[T any](cols []column[T], records []T) [][]string {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		row := make([]string, len(cols))
		for i, c := range cols {
			row[i] = cell(c, rec)
		}
		rows = append(rows, row)
	}
	return rows
}

func cell[T any](c column[T], rec T) string {
	if c.Value != nil {
		if s := formatValue(c.Field, c.Value(rec)); s != "" {
			return s
		}
	}
	if c.Fallback != nil {
		if s := formatValue(c.Field, c.Fallback(rec)); s != "" {
			return s
		}
	}
	return NotAvailable
}
