package bind

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Query reads optional typed values from a query string. Parse failures are
// collected per parameter and reported together by Errors.
//
//	q := bind.NewQuery(r)
//	minPrice := q.Decimal("min_price")
//	inStock := q.Bool("in_stock")
//	if errs := q.Errors(); len(errs) > 0 { ... 422 ... }
type Query struct {
	values url.Values
	errs   map[string]string
}

// NewQuery wraps r's query string.
func NewQuery(r *http.Request) *Query {
	return &Query{values: r.URL.Query(), errs: make(map[string]string)}
}

func (q *Query) raw(key string) (string, bool) {
	v := strings.TrimSpace(q.values.Get(key))
	return v, v != ""
}

// String returns the trimmed value, or "" when absent.
func (q *Query) String(key string) string {
	v, _ := q.raw(key)
	return v
}

// Int returns nil when key is absent.
func (q *Query) Int(key string) *int {
	v, ok := q.raw(key)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		q.errs[key] = fmt.Sprintf("The %s must be an integer.", key)
		return nil
	}
	return &n
}

// Decimal returns nil when key is absent.
func (q *Query) Decimal(key string) *decimal.Decimal {
	v, ok := q.raw(key)
	if !ok {
		return nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		q.errs[key] = fmt.Sprintf("The %s must be a number.", key)
		return nil
	}
	return &d
}

// Bool accepts the forms strconv.ParseBool does. Returns nil when absent.
func (q *Query) Bool(key string) *bool {
	v, ok := q.raw(key)
	if !ok {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		q.errs[key] = fmt.Sprintf("The %s field must be true or false.", key)
		return nil
	}
	return &b
}

// Time accepts RFC 3339 or a bare 2006-01-02 date (midnight UTC).
// Returns nil when absent.
func (q *Query) Time(key string) *time.Time {
	v, ok := q.raw(key)
	if !ok {
		return nil
	}
	t, err := ParseTime(v)
	if err != nil {
		q.errs[key] = fmt.Sprintf("The %s is not a valid date.", key)
		return nil
	}
	return &t
}

// Require records a missing-parameter error for every absent key.
func (q *Query) Require(keys ...string) {
	for _, key := range keys {
		if _, ok := q.raw(key); !ok {
			if _, failed := q.errs[key]; !failed {
				q.errs[key] = fmt.Sprintf("The %s field is required.", key)
			}
		}
	}
}

// Errors returns the collected failures; empty when every value parsed.
func (q *Query) Errors() map[string]string { return q.errs }

var timeLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

// ParseTime parses RFC 3339, a zone-less timestamp, or a bare date. Values
// without a zone are taken as UTC.
func ParseTime(s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("bind: unrecognised time %q", s)
}
