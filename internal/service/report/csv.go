package report

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/buildline/crm-backend/internal/domain"
)

// CSVExporter writes the main table as CSV with a header row. Extra tables
// follow after a blank line, each introduced by its title.
type CSVExporter struct{}

func (CSVExporter) Format() string      { return FormatCSV }
func (CSVExporter) Extension() string   { return "csv" }
func (CSVExporter) ContentType() string { return "text/csv; charset=utf-8" }

func (CSVExporter) Export(data *domain.ReportData) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	for i, t := range tables(data) {
		if i > 0 {
			if err := w.WriteAll([][]string{{}, {t.Title}}); err != nil {
				return nil, fmt.Errorf("write csv title: %w", err)
			}
		}
		if err := w.Write(t.Columns); err != nil {
			return nil, fmt.Errorf("write csv header: %w", err)
		}
		if err := w.WriteAll(t.Rows); err != nil {
			return nil, fmt.Errorf("write csv rows: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
