package domain

import (
	"math"
	"strings"
	"time"
)

// Pagination defaults shared by every list endpoint.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// FilterAll is the wildcard sentinel for status and category filters.
const FilterAll = "all"

// SortOrder is the direction of a list sort.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ListFilter contains filtering and pagination parameters for list queries.
type ListFilter struct {
	Page      int
	Limit     int
	Status    string
	Category  string
	Search    string
	SortBy    string
	SortOrder SortOrder
	Range     DateRange
}

// Normalize clamps paging into range and drops wildcard filters.
func (f *ListFilter) Normalize() {
	if f.Page < 1 {
		f.Page = DefaultPage
	}
	if f.Limit < 1 {
		f.Limit = DefaultLimit
	}
	if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}
	f.Search = strings.TrimSpace(f.Search)
	if strings.EqualFold(f.Status, FilterAll) {
		f.Status = ""
	}
	if strings.EqualFold(f.Category, FilterAll) {
		f.Category = ""
	}
	if f.SortOrder != SortAsc && f.SortOrder != SortDesc {
		f.SortOrder = ""
	}
}

// Offset returns the number of rows to skip for the current page.
func (f ListFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// DateRange restricts records by their canonical date field. AllTime wins
// over From/To; the range applies only when both bounds are set.
type DateRange struct {
	From    *time.Time
	To      *time.Time
	AllTime bool
}

// Bounds returns the inclusive [startOfDay(from), endOfDay(to)] window and
// whether it applies.
func (r DateRange) Bounds() (start, end time.Time, ok bool) {
	if r.AllTime || r.From == nil || r.To == nil {
		return time.Time{}, time.Time{}, false
	}
	return StartOfDay(*r.From), EndOfDay(*r.To), true
}

// Contains reports whether t falls inside the range.
func (r DateRange) Contains(t time.Time) bool {
	start, end, ok := r.Bounds()
	if !ok {
		return true
	}
	return !t.Before(start) && !t.After(end)
}

// StartOfDay returns midnight of t's day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last representable instant of t's day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// Pagination is the page metadata returned alongside list data.
type Pagination struct {
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
	TotalItems   int `json:"totalItems"`
	ItemsPerPage int `json:"itemsPerPage"`
}

// NewPagination computes page metadata with totalPages = ceil(total/limit).
func NewPagination(page, limit, total int) Pagination {
	pages := 0
	if limit > 0 {
		pages = int(math.Ceil(float64(total) / float64(limit)))
	}
	return Pagination{
		CurrentPage:  page,
		TotalPages:   pages,
		TotalItems:   total,
		ItemsPerPage: limit,
	}
}

// Page is one page of list results.
type Page[T any] struct {
	Items      []T
	Pagination Pagination
}
