package report

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/buildline/crm-backend/internal/domain"
)

// ModuleData assembles the report of one module for the requested range.
// A fetch failure is returned as an error unless q.Fallback asks for sample
// data, in which case the sample rows are returned flagged as such.
func (s *Service) ModuleData(ctx context.Context, key domain.ReportModule, q Query) (*domain.ReportData, error) {
	m, ok := s.modules[key]
	if !ok {
		return nil, fmt.Errorf("report module %q: %w", key, domain.ErrNotFound)
	}
	if q.Fallback != "" && q.Fallback != FallbackSample {
		return nil, domain.NewValidationError("fallback", "Invalid fallback option")
	}

	rng, err := resolveRange(q, s.now())
	if err != nil {
		return nil, err
	}

	data := &domain.ReportData{
		Module:      key,
		Title:       m.title(),
		RangeText:   rangeText(rng),
		RangeTag:    rangeTag(rng),
		Columns:     m.columnTitles(),
		GeneratedAt: s.now(),
	}

	// One extra row tells a capped result from one that fits exactly.
	rows, err := m.rows(ctx, rng, s.cfg.MaxRows+1)
	switch {
	case err == nil:
		if len(rows) > s.cfg.MaxRows {
			rows = rows[:s.cfg.MaxRows]
			data.Truncated = true
			s.log.WarnContext(ctx, "report truncated",
				slog.String("module", key.String()),
				slog.Int("max_rows", s.cfg.MaxRows),
			)
		}
		data.Rows = rows
	case q.Fallback == FallbackSample && ctx.Err() == nil:
		s.log.WarnContext(ctx, "report fetch failed, using sample data",
			slog.String("module", key.String()),
			slog.String("error", err.Error()),
		)
		data.Rows = m.sampleRows()
		data.Sample = true
	default:
		return nil, fmt.Errorf("fetch %s report: %w", key, err)
	}

	if key == domain.ReportModuleCustomers && s.cfg.SampleOrdersTable {
		data.Extra = append(data.Extra, sampleOrders())
	}
	return data, nil
}

// ExportResult is a rendered report file.
type ExportResult struct {
	FileName    string
	ContentType string
	Body        []byte
}

// Export renders a module report in the given format. An empty format means
// PDF. Unknown formats fail with domain.ErrExportUnavailable.
func (s *Service) Export(ctx context.Context, key domain.ReportModule, format string, q Query) (*ExportResult, error) {
	if format == "" {
		format = FormatPDF
	}
	exp, ok := s.exporters[format]
	if !ok {
		return nil, fmt.Errorf("format %q: %w", format, domain.ErrExportUnavailable)
	}

	data, err := s.ModuleData(ctx, key, q)
	if err != nil {
		return nil, err
	}

	body, err := exp.Export(data)
	if err != nil {
		return nil, fmt.Errorf("render %s report as %s: %w", key, format, err)
	}

	s.log.InfoContext(ctx, "report exported",
		slog.String("module", key.String()),
		slog.String("format", format),
		slog.Int("rows", len(data.Rows)),
		slog.Bool("sample", data.Sample),
	)

	return &ExportResult{
		FileName:    fileName(key, data.RangeTag, exp.Extension()),
		ContentType: exp.ContentType(),
		Body:        body,
	}, nil
}

func fileName(key domain.ReportModule, tag, ext string) string {
	return fmt.Sprintf("%s_report_%s.%s", key, tag, ext)
}
