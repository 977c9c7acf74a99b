package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/buildline/crm-backend/internal/domain"
)

// EmptyNotice replaces the table when a report has no rows.
const EmptyNotice = "No records found for the selected period."

const (
	pdfRowHeight    = 7.0
	pdfHeaderHeight = 8.0
	pdfFontSize     = 9.0
)

// PDFExporter renders a landscape A4 report: a title block, a paginated
// table whose header repeats on every page and a "Page n of N" footer.
type PDFExporter struct {
	company string
	now     func() time.Time
}

// NewPDFExporter creates a PDF exporter that prints company in the title
// block.
func NewPDFExporter(company string) *PDFExporter {
	return &PDFExporter{company: company, now: time.Now}
}

func (*PDFExporter) Format() string      { return FormatPDF }
func (*PDFExporter) Extension() string   { return "pdf" }
func (*PDFExporter) ContentType() string { return "application/pdf" }

func (e *PDFExporter) Export(data *domain.ReportData) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AliasNbPages("")
	pdf.SetAutoPageBreak(false, 15)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 8, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	generated := data.GeneratedAt
	if generated.IsZero() {
		generated = e.now()
	}

	if e.company != "" {
		pdf.SetFont("Helvetica", "B", 16)
		pdf.CellFormat(0, 9, tr(e.company), "", 1, "L", false, 0, "")
	}
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, tr(data.Title), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, tr("Date range: "+data.RangeText), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Generated: "+generated.Format("Jan 2, 2006 15:04"), "", 1, "L", false, 0, "")
	if data.Sample {
		pdf.CellFormat(0, 6, "Sample data", "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	for i, t := range tables(data) {
		if i > 0 {
			pdf.Ln(6)
			e.ensureSpace(pdf, 2*pdfHeaderHeight)
			pdf.SetFont("Helvetica", "B", 12)
			pdf.CellFormat(0, 8, tr(t.Title), "", 1, "L", false, 0, "")
		}
		if len(t.Rows) == 0 {
			pdf.SetFont("Helvetica", "I", 10)
			pdf.CellFormat(0, 8, EmptyNotice, "", 1, "L", false, 0, "")
			continue
		}
		e.drawTable(pdf, tr, t)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *PDFExporter) drawTable(pdf *fpdf.Fpdf, tr func(string) string, t domain.ReportTable) {
	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	colW := (pageW - left - right) / float64(len(t.Columns))

	header := func() {
		pdf.SetFont("Helvetica", "B", pdfFontSize)
		pdf.SetFillColor(211, 211, 211)
		for _, title := range t.Columns {
			pdf.CellFormat(colW, pdfHeaderHeight, fit(pdf, tr(title), colW), "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", pdfFontSize)
	}

	e.ensureSpace(pdf, pdfHeaderHeight+pdfRowHeight)
	header()
	for _, row := range t.Rows {
		if e.ensureSpace(pdf, pdfRowHeight) {
			header()
		}
		for _, value := range row {
			pdf.CellFormat(colW, pdfRowHeight, fit(pdf, tr(value), colW), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
}

// ensureSpace starts a new page when h no longer fits above the bottom
// margin and reports whether it did.
func (*PDFExporter) ensureSpace(pdf *fpdf.Fpdf, h float64) bool {
	_, pageH := pdf.GetPageSize()
	_, _, _, bottom := pdf.GetMargins()
	if pdf.GetY()+h <= pageH-bottom {
		return false
	}
	pdf.AddPage()
	return true
}

// fit truncates s with an ellipsis so it fits a cell of width w.
func fit(pdf *fpdf.Fpdf, s string, w float64) string {
	maxW := w - 2*pdf.GetCellMargin()
	if pdf.GetStringWidth(s) <= maxW {
		return s
	}
	b := []byte(s)
	for len(b) > 0 && pdf.GetStringWidth(string(b)+"...") > maxW {
		b = b[:len(b)-1]
	}
	return string(b) + "..."
}
