package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/buildline/crm-backend/internal/domain"
)

// chartMonths is the number of calendar months in monthly series, current
// month included.
const chartMonths = 6

// Dashboard holds the headline counters.
type Dashboard struct {
	TotalCustomers    int             `json:"totalCustomers"`
	TotalLeads        int             `json:"totalLeads"`
	TotalAppointments int             `json:"totalAppointments"`
	TotalAssets       int             `json:"totalAssets"`
	TotalEmployees    int             `json:"totalEmployees"`
	TotalDocuments    int             `json:"totalDocuments"`
	OpenLeads         int             `json:"openLeads"`
	QualifiedLeads    int             `json:"qualifiedLeads"`
	PipelineValue     decimal.Decimal `json:"pipelineValue"`
	ConversionRate    float64         `json:"conversionRate"`
}

// Charts holds fixed-shape chart series. Every series lists all of its keys,
// zero counts included.
type Charts struct {
	LeadsByStatus         []domain.Bucket `json:"leadsByStatus"`
	LeadsByMonth          []domain.Bucket `json:"leadsByMonth"`
	CustomersByMonth      []domain.Bucket `json:"customersByMonth"`
	CustomersByStatus     []domain.Bucket `json:"customersByStatus"`
	AppointmentsByStatus  []domain.Bucket `json:"appointmentsByStatus"`
	AssetsByStatus        []domain.Bucket `json:"assetsByStatus"`
	EmployeesByDepartment []domain.Bucket `json:"employeesByDepartment"`
	DocumentsByCategory   []domain.Bucket `json:"documentsByCategory"`
}

// Dashboard returns the headline counters, cached.
func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	var cached Dashboard
	if s.cacheGet(ctx, domain.CacheKeyDashboard, &cached) {
		return &cached, nil
	}

	var (
		d   Dashboard
		err error
	)
	counts := []struct {
		dst   *int
		count func(context.Context) (int, error)
		name  string
	}{
		{&d.TotalCustomers, s.src.Customers.Count, "customers"},
		{&d.TotalLeads, s.src.Leads.Count, "leads"},
		{&d.TotalAppointments, s.src.Appointments.Count, "appointments"},
		{&d.TotalAssets, s.src.Assets.Count, "assets"},
		{&d.TotalEmployees, s.src.Employees.Count, "employees"},
		{&d.TotalDocuments, s.src.Documents.Count, "documents"},
	}
	for _, c := range counts {
		if *c.dst, err = c.count(ctx); err != nil {
			return nil, fmt.Errorf("count %s: %w", c.name, err)
		}
	}

	summary, err := s.src.Leads.Summary(ctx)
	if err != nil {
		return nil, fmt.Errorf("lead summary: %w", err)
	}
	d.PipelineValue = decimal.Zero
	for _, g := range summary {
		switch g.Status {
		case domain.LeadStatusNew, domain.LeadStatusContacted:
			d.OpenLeads += g.Count
			d.PipelineValue = d.PipelineValue.Add(g.TotalValue)
		case domain.LeadStatusQualified:
			d.QualifiedLeads += g.Count
		}
	}
	if d.TotalLeads > 0 {
		rate := decimal.NewFromInt(int64(d.QualifiedLeads)).
			Div(decimal.NewFromInt(int64(d.TotalLeads))).
			Mul(decimal.NewFromInt(100)).
			Round(1)
		d.ConversionRate = rate.InexactFloat64()
	}

	s.cacheSet(ctx, domain.CacheKeyDashboard, d)
	return &d, nil
}

// Charts returns the chart series, cached.
func (s *Service) Charts(ctx context.Context) (*Charts, error) {
	var cached Charts
	if s.cacheGet(ctx, domain.CacheKeyCharts, &cached) {
		return &cached, nil
	}

	var c Charts

	summary, err := s.src.Leads.Summary(ctx)
	if err != nil {
		return nil, fmt.Errorf("lead summary: %w", err)
	}
	leadBuckets := make([]domain.Bucket, 0, len(summary))
	for _, g := range summary {
		leadBuckets = append(leadBuckets, domain.Bucket{Key: g.Status.String(), Count: g.Count})
	}
	c.LeadsByStatus = fill(leadStatusKeys, leadBuckets)

	months, since := monthKeys(s.now(), chartMonths)
	if c.LeadsByMonth, err = fetchFilled(ctx, months, func(ctx context.Context) ([]domain.Bucket, error) {
		return s.src.Leads.CountByMonth(ctx, since)
	}); err != nil {
		return nil, fmt.Errorf("leads by month: %w", err)
	}
	if c.CustomersByMonth, err = fetchFilled(ctx, months, func(ctx context.Context) ([]domain.Bucket, error) {
		return s.src.Customers.CountByMonth(ctx, since)
	}); err != nil {
		return nil, fmt.Errorf("customers by month: %w", err)
	}
	if c.CustomersByStatus, err = fetchFilled(ctx, customerStatusKeys, s.src.Customers.CountByStatus); err != nil {
		return nil, fmt.Errorf("customers by status: %w", err)
	}
	if c.AppointmentsByStatus, err = fetchFilled(ctx, appointmentStatusKeys, s.src.Appointments.CountByStatus); err != nil {
		return nil, fmt.Errorf("appointments by status: %w", err)
	}
	if c.AssetsByStatus, err = fetchFilled(ctx, assetStatusKeys, s.src.Assets.CountByStatus); err != nil {
		return nil, fmt.Errorf("assets by status: %w", err)
	}
	if c.EmployeesByDepartment, err = fetchFilled(ctx, departmentKeys, s.src.Employees.CountByDepartment); err != nil {
		return nil, fmt.Errorf("employees by department: %w", err)
	}
	if c.DocumentsByCategory, err = fetchFilled(ctx, documentCategoryKeys, s.src.Documents.CountByCategory); err != nil {
		return nil, fmt.Errorf("documents by category: %w", err)
	}

	s.cacheSet(ctx, domain.CacheKeyCharts, c)
	return &c, nil
}

// ---------------------------------------------------------------------------
// Series helpers
// ---------------------------------------------------------------------------

var (
	leadStatusKeys = keys(domain.AllLeadStatuses)

	customerStatusKeys = keys([]domain.CustomerStatus{
		domain.CustomerStatusActive, domain.CustomerStatusInactive, domain.CustomerStatusProspect,
	})
	appointmentStatusKeys = keys([]domain.AppointmentStatus{
		domain.AppointmentStatusScheduled, domain.AppointmentStatusCompleted,
		domain.AppointmentStatusCancelled, domain.AppointmentStatusRescheduled,
	})
	assetStatusKeys = keys([]domain.AssetStatus{
		domain.AssetStatusAvailable, domain.AssetStatusInUse,
		domain.AssetStatusMaintenance, domain.AssetStatusRetired,
	})
	departmentKeys = keys([]domain.Department{
		domain.DepartmentManagement, domain.DepartmentSales, domain.DepartmentOperations,
		domain.DepartmentEngineering, domain.DepartmentAdministration, domain.DepartmentField,
	})
	documentCategoryKeys = keys([]domain.DocumentCategory{
		domain.DocumentCategoryContract, domain.DocumentCategoryInvoice, domain.DocumentCategoryPermit,
		domain.DocumentCategoryBlueprint, domain.DocumentCategoryReport, domain.DocumentCategoryOther,
	})
)

func keys[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

func fetchFilled(ctx context.Context, order []string, fetch func(context.Context) ([]domain.Bucket, error)) ([]domain.Bucket, error) {
	buckets, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	return fill(order, buckets), nil
}

// fill returns one bucket per key in order, taking counts from buckets and
// zero otherwise. Keys not in order are dropped.
func fill(order []string, buckets []domain.Bucket) []domain.Bucket {
	counts := make(map[string]int, len(buckets))
	for _, b := range buckets {
		counts[b.Key] += b.Count
	}
	out := make([]domain.Bucket, len(order))
	for i, k := range order {
		out[i] = domain.Bucket{Key: k, Count: counts[k]}
	}
	return out
}

// monthKeys returns the "YYYY-MM" keys of the n months ending with now's
// month, oldest first, and the first instant of the oldest month.
func monthKeys(now time.Time, n int) ([]string, time.Time) {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	since := first.AddDate(0, -(n - 1), 0)
	out := make([]string, n)
	for i := range n {
		out[i] = since.AddDate(0, i, 0).Format("2006-01")
	}
	return out, since
}

// ---------------------------------------------------------------------------
// Cache
// ---------------------------------------------------------------------------

func (s *Service) cacheGet(ctx context.Context, key string, dst any) bool {
	hit, err := s.cache.GetJSON(ctx, key, dst)
	if err != nil {
		s.log.WarnContext(ctx, "cache read failed", slog.String("key", key), slog.String("error", err.Error()))
		return false
	}
	return hit
}

func (s *Service) cacheSet(ctx context.Context, key string, v any) {
	if err := s.cache.SetJSON(ctx, key, v, s.cfg.CacheTTL); err != nil {
		s.log.WarnContext(ctx, "cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}
