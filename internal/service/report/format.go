package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/buildline/crm-backend/internal/domain"
)

// DateLayout is the display format of dates in reports.
const DateLayout = "Jan 2, 2006"

// isCurrencyField reports whether a field holds money.
func isCurrencyField(field string) bool {
	f := strings.ToLower(field)
	return strings.Contains(f, "value") || strings.Contains(f, "salary")
}

// formatValue renders v for display. Empty values render as "".
func formatValue(field string, v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(x)
	case *string:
		if x == nil {
			return ""
		}
		return strings.TrimSpace(*x)
	case time.Time:
		if x.IsZero() {
			return ""
		}
		return x.Format(DateLayout)
	case *time.Time:
		if x == nil || x.IsZero() {
			return ""
		}
		return x.Format(DateLayout)
	case decimal.Decimal:
		if isCurrencyField(field) {
			return domain.FormatCurrency(x)
		}
		return x.String()
	case []string:
		parts := make([]string, 0, len(x))
		for _, p := range x {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
		}
		return strings.Join(parts, ", ")
	case domain.Address:
		return x.Line()
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		if isCurrencyField(field) {
			return domain.FormatCurrency(decimal.NewFromFloat(x))
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	case fmt.Stringer:
		return strings.TrimSpace(x.String())
	}
	return fmt.Sprint(v)
}

// rangeText describes a resolved date range for report headers.
func rangeText(rng domain.DateRange) string {
	start, end, ok := rng.Bounds()
	if !ok {
		return "All time"
	}
	return start.Format(DateLayout) + " - " + end.Format(DateLayout)
}

// rangeTag is the date range part of an export file name.
func rangeTag(rng domain.DateRange) string {
	start, end, ok := rng.Bounds()
	if !ok {
		return "ALLTIME"
	}
	return start.Format("20060102") + "-" + end.Format("20060102")
}

// formatSize renders a byte count as B, KB or MB.
func formatSize(n int64) string {
	switch {
	case n <= 0:
		return ""
	case n < 1024:
		return strconv.FormatInt(n, 10) + " B"
	case n < 1024*1024:
		return strconv.FormatFloat(float64(n)/1024, 'f', 1, 64) + " KB"
	}
	return strconv.FormatFloat(float64(n)/(1024*1024), 'f', 1, 64) + " MB"
}
