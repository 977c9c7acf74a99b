package report

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/buildline/crm-backend/internal/domain"
)

const maxSheetName = 31

// XLSXExporter writes one worksheet per table with a bold shaded header row.
type XLSXExporter struct{}

func (XLSXExporter) Format() string    { return FormatXLSX }
func (XLSXExporter) Extension() string { return "xlsx" }
func (XLSXExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (XLSXExporter) Export(data *domain.ReportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D3D3D3"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	for i, t := range tables(data) {
		name := sheetName(t.Title, i)
		idx, err := f.NewSheet(name)
		if err != nil {
			return nil, fmt.Errorf("create sheet %q: %w", name, err)
		}
		if i == 0 {
			f.SetActiveSheet(idx)
		}
		if err := writeSheet(f, name, t, header); err != nil {
			return nil, err
		}
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("delete default sheet: %w", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, sheet string, t domain.ReportTable, headerStyle int) error {
	for col, title := range t.Columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return fmt.Errorf("set header %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("style header %s: %w", cell, err)
		}
	}

	for r, row := range t.Rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("set cell %s: %w", cell, err)
			}
		}
	}

	if len(t.Columns) > 0 {
		last, err := excelize.ColumnNumberToName(len(t.Columns))
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, "A", last, 20); err != nil {
			return fmt.Errorf("set column width: %w", err)
		}
	}
	return nil
}

// sheetName derives a valid, unique worksheet name from a table title.
func sheetName(title string, i int) string {
	name := []rune(title)
	for j, r := range name {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			name[j] = ' '
		}
	}
	if len(name) > maxSheetName {
		name = name[:maxSheetName]
	}
	if len(name) == 0 || string(name) == "Sheet1" {
		return fmt.Sprintf("Table %d", i+1)
	}
	return string(name)
}
