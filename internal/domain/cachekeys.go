package domain

// Cache keys of aggregates computed from entity tables.
const (
	CacheKeyLeadStats = "leads:stats"
	CacheKeyDashboard = "reports:dashboard"
	CacheKeyCharts    = "reports:charts"
)

// ReportCacheKeys lists the keys every entity mutation invalidates.
var ReportCacheKeys = []string{CacheKeyDashboard, CacheKeyCharts}
