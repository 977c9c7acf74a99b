package report

import "github.com/buildline/crm-backend/internal/domain"

// Export formats.
const (
	FormatPDF  = "pdf"
	FormatXLSX = "xlsx"
	FormatCSV  = "csv"
)

// Exporter renders assembled report data into a file.
type Exporter interface {
	Format() string
	Extension() string
	ContentType() string
	Export(data *domain.ReportData) ([]byte, error)
}

// tables returns the main table followed by any extra tables.
func tables(data *domain.ReportData) []domain.ReportTable {
	out := make([]domain.ReportTable, 0, 1+len(data.Extra))
	out = append(out, domain.ReportTable{Title: data.Title, Columns: data.Columns, Rows: data.Rows})
	return append(out, data.Extra...)
}
