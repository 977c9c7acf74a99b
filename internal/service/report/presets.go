package report

import (
	"time"

	"github.com/buildline/crm-backend/internal/domain"
)

// Date range presets.
const (
	PresetLast7       = "last7"
	PresetLast30      = "last30"
	PresetLast3Months = "last3months"
	PresetThisYear    = "thisYear"
	PresetAllTime     = "allTime"
	PresetCustom      = "custom"
)

// FallbackSample asks for the fixed sample dataset when fetching fails.
const FallbackSample = "sample"

// Query selects the records of a module report.
type Query struct {
	Preset   string
	From     *time.Time
	To       *time.Time
	AllTime  bool
	Fallback string
}

// resolveRange turns a query into a concrete date range. The allTime flag
// wins over everything else. Explicit from/to bounds win over the preset,
// which only computes bounds when none arrive.
func resolveRange(q Query, now time.Time) (domain.DateRange, error) {
	switch q.Preset {
	case "", PresetLast7, PresetLast30, PresetLast3Months, PresetThisYear, PresetAllTime, PresetCustom:
	default:
		return domain.DateRange{}, domain.NewValidationError("preset", "Invalid date range preset")
	}

	if q.AllTime || q.Preset == PresetAllTime {
		return domain.DateRange{AllTime: true}, nil
	}

	if q.From != nil || q.To != nil {
		if q.From == nil || q.To == nil {
			msg := "Both from and to are required"
			if q.Preset == PresetCustom {
				msg = "Custom range requires from and to"
			}
			return domain.DateRange{}, domain.NewValidationError("range", msg)
		}
		if q.From.After(*q.To) {
			return domain.DateRange{}, domain.NewValidationError("from", "From date must not be after to date")
		}
		return domain.DateRange{From: q.From, To: q.To}, nil
	}

	today := domain.StartOfDay(now)
	between := func(from time.Time) domain.DateRange {
		return domain.DateRange{From: &from, To: &today}
	}

	switch q.Preset {
	case PresetLast7:
		return between(today.AddDate(0, 0, -6)), nil
	case PresetLast30:
		return between(today.AddDate(0, 0, -29)), nil
	case PresetLast3Months:
		return between(today.AddDate(0, -3, 0)), nil
	case PresetThisYear:
		return between(time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, today.Location())), nil
	case PresetCustom:
		return domain.DateRange{}, domain.NewValidationError("range", "Custom range requires from and to")
	}
	return domain.DateRange{AllTime: true}, nil
}
