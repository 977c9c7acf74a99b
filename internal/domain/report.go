package domain

import "time"

// Bucket is one group of a count aggregation.
type Bucket struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// ReportModule identifies an entity collection that can be reported on.
type ReportModule string

const (
	ReportModuleCustomers    ReportModule = "customers"
	ReportModuleLeads        ReportModule = "leads"
	ReportModuleAppointments ReportModule = "appointments"
	ReportModuleAssets       ReportModule = "assets"
	ReportModuleEmployees    ReportModule = "employees"
	ReportModuleDocuments    ReportModule = "documents"
)

func (m ReportModule) String() string { return string(m) }

// AllReportModules lists modules in display order.
var AllReportModules = []ReportModule{
	ReportModuleCustomers, ReportModuleLeads, ReportModuleAppointments,
	ReportModuleAssets, ReportModuleEmployees, ReportModuleDocuments,
}

// ReportTable is a titled grid of display strings.
type ReportTable struct {
	Title   string     `json:"title"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// ReportData is an assembled module report. Every cell is non-empty; missing
// values are rendered as "N/A". Sample is true only when the caller asked for
// sample data and the fetch failed. Truncated is true when more records
// matched than the configured row cap allows.
type ReportData struct {
	Module      ReportModule  `json:"module"`
	Title       string        `json:"title"`
	RangeText   string        `json:"rangeText"`
	RangeTag    string        `json:"rangeTag"`
	Columns     []string      `json:"columns"`
	Rows        [][]string    `json:"rows"`
	Extra       []ReportTable `json:"extra,omitempty"`
	Sample      bool          `json:"sample"`
	Truncated   bool          `json:"truncated"`
	GeneratedAt time.Time     `json:"generatedAt"`
}
