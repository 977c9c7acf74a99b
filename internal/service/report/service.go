// Package report assembles per-module report tables, dashboard counters and
// chart series, and exports module reports as PDF, XLSX or CSV.
package report

import (
	"context"
	"log/slog"
	"time"

	"github.com/buildline/crm-backend/internal/config"
	"github.com/buildline/crm-backend/internal/domain"
)

type customerSource interface {
	ListInRange(ctx context.Context, rng domain.DateRange, limit int) ([]domain.Customer, error)
	Count(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context) ([]domain.Bucket, error)
	CountByMonth(ctx context.Context, since time.Time) ([]domain.Bucket, error)
}

type leadSource interface {
	ListInRange(ctx context.Context, rng domain.DateRange, limit int) ([]domain.Lead, error)
	Count(ctx context.Context) (int, error)
	Summary(ctx context.Context) ([]domain.LeadStatusSummary, error)
	CountByMonth(ctx context.Context, since time.Time) ([]domain.Bucket, error)
}

type appointmentSource interface {
	ListInRange(ctx context.Context, rng domain.DateRange, limit int) ([]domain.Appointment, error)
	Count(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context) ([]domain.Bucket, error)
}

type assetSource interface {
	ListInRange(ctx context.Context, rng domain.DateRange, limit int) ([]domain.Asset, error)
	Count(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context) ([]domain.Bucket, error)
}

type employeeSource interface {
	ListInRange(ctx context.Context, rng domain.DateRange, limit int) ([]domain.Employee, error)
	Count(ctx context.Context) (int, error)
	CountByDepartment(ctx context.Context) ([]domain.Bucket, error)
}

type documentSource interface {
	ListInRange(ctx context.Context, rng domain.DateRange, limit int) ([]domain.Document, error)
	Count(ctx context.Context) (int, error)
	CountByCategory(ctx context.Context) ([]domain.Bucket, error)
}

type cache interface {
	GetJSON(ctx context.Context, key string, dst any) (bool, error)
	SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error
}

// Sources bundles the record sources reports read from.
type Sources struct {
	Customers    customerSource
	Leads        leadSource
	Appointments appointmentSource
	Assets       assetSource
	Employees    employeeSource
	Documents    documentSource
}

// Service provides report operations.
type Service struct {
	src       Sources
	modules   map[domain.ReportModule]module
	exporters map[string]Exporter
	cache     cache
	cfg       config.ReportsConfig
	now       func() time.Time
	log       *slog.Logger
}

// NewService creates a new report service with the PDF, XLSX and CSV
// exporters registered.
func NewService(log *slog.Logger, src Sources, cache cache, cfg config.ReportsConfig) *Service {
	s := &Service{
		src:   src,
		cache: cache,
		cfg:   cfg,
		now:   time.Now,
		log:   log.With("service", "report"),
	}
	s.modules = buildModules(src)
	s.exporters = map[string]Exporter{}
	s.RegisterExporter(NewPDFExporter(cfg.CompanyName))
	s.RegisterExporter(XLSXExporter{})
	s.RegisterExporter(CSVExporter{})
	return s
}

// RegisterExporter adds or replaces the exporter for its format.
func (s *Service) RegisterExporter(e Exporter) {
	s.exporters[e.Format()] = e
}

// ModuleInfo describes a reportable module.
type ModuleInfo struct {
	Key     domain.ReportModule `json:"key"`
	Title   string              `json:"title"`
	Columns []string            `json:"columns"`
	Formats []string            `json:"formats"`
}

// Modules lists the reportable modules in display order.
func (s *Service) Modules() []ModuleInfo {
	formats := s.formats()
	out := make([]ModuleInfo, 0, len(domain.AllReportModules))
	for _, key := range domain.AllReportModules {
		m := s.modules[key]
		out = append(out, ModuleInfo{Key: key, Title: m.title(), Columns: m.columnTitles(), Formats: formats})
	}
	return out
}

func (s *Service) formats() []string {
	out := make([]string, 0, len(s.exporters))
	for _, f := range []string{FormatPDF, FormatXLSX, FormatCSV} {
		if _, ok := s.exporters[f]; ok {
			out = append(out, f)
		}
	}
	return out
}
