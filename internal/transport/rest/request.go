package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/buildline/crm-backend/internal/domain"
)

// maxJSONBody caps JSON request bodies.
const maxJSONBody = 1 << 20

// decodeJSON decodes the request body into dst. Unknown fields are ignored
// so updates only touch whitelisted fields.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.NewValidationError("body", "Request body is required")
		}
		return domain.NewValidationError("body", "Invalid request body: "+err.Error())
	}
	return nil
}

// pathID parses the {id} path value.
func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", domain.ErrInvalidID, r.PathValue("id"))
	}
	return id, nil
}

// parseDate accepts a calendar date (2006-01-02) or an RFC 3339 timestamp.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339Nano, s)
}

// listFilter reads the shared list query parameters. Paging values that do
// not parse fall back to the defaults; malformed dates are rejected.
func listFilter(r *http.Request) (domain.ListFilter, error) {
	q := r.URL.Query()
	f := domain.ListFilter{
		Page:      atoiOr(q.Get("page"), domain.DefaultPage),
		Limit:     atoiOr(q.Get("limit"), domain.DefaultLimit),
		Status:    q.Get("status"),
		Category:  q.Get("category"),
		Search:    q.Get("search"),
		SortBy:    q.Get("sortBy"),
		SortOrder: domain.SortOrder(strings.ToLower(q.Get("sortOrder"))),
	}

	rng, err := dateRange(r)
	if err != nil {
		return f, err
	}
	f.Range = rng
	f.Normalize()
	return f, nil
}

// dateRange reads from, to and allTime from the query string.
func dateRange(r *http.Request) (domain.DateRange, error) {
	q := r.URL.Query()
	var (
		rng  domain.DateRange
		errs []domain.FieldError
	)
	rng.AllTime = truthy(q.Get("allTime"))
	for _, p := range []struct {
		name string
		dst  **time.Time
	}{{"from", &rng.From}, {"to", &rng.To}} {
		v := strings.TrimSpace(q.Get(p.name))
		if v == "" {
			continue
		}
		t, err := parseDate(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: p.name, Message: "Invalid date"})
			continue
		}
		*p.dst = &t
	}
	if len(errs) > 0 {
		return rng, domain.NewValidationErrors(errs)
	}
	return rng, nil
}

func atoiOr(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func truthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// ---------------------------------------------------------------------------
// JSON field types
// ---------------------------------------------------------------------------

// jsonDate is a request date that accepts "2006-01-02", RFC 3339 or an
// empty string.
type jsonDate struct {
	t  time.Time
	ok bool
}

func (d *jsonDate) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	if s = strings.TrimSpace(s); s == "" {
		return nil
	}
	t, err := parseDate(s)
	if err != nil {
		return fmt.Errorf("invalid date %q", s)
	}
	d.t, d.ok = t, true
	return nil
}

func (d *jsonDate) ptr() *time.Time {
	if d == nil || !d.ok {
		return nil
	}
	t := d.t
	return &t
}

// jsonID is an optional reference id; an empty string means none.
type jsonID struct {
	id uuid.UUID
	ok bool
}

func (i *jsonID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("id must be a string: %w", err)
	}
	if s = strings.TrimSpace(s); s == "" {
		return nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return fmt.Errorf("invalid id %q", s)
	}
	i.id, i.ok = id, true
	return nil
}

func (i *jsonID) ptr() *uuid.UUID {
	if i == nil || !i.ok {
		return nil
	}
	id := i.id
	return &id
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
