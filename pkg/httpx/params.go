package httpx

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

// ErrBadParam is wrapped by every path and query parsing error so handlers can
// map it to 400 through errhttp.
var ErrBadParam = errors.New("invalid request parameter")

func init() {
	// Monetary values are written as JSON numbers (9.99), not strings ("9.99").
	decimal.MarshalJSONWithoutQuotes = true
}

// PathInt64 parses the chi URL parameter name as a positive int64 id.
func PathInt64(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer, got %q", ErrBadParam, name, raw)
	}
	return v, nil
}

// PathString returns the chi URL parameter name, failing when it is blank.
func PathString(r *http.Request, name string) (string, error) {
	v := strings.TrimSpace(chi.URLParam(r, name))
	if v == "" {
		return "", fmt.Errorf("%w: %s is required", ErrBadParam, name)
	}
	return v, nil
}

// QueryString returns the query parameter name, failing when it is blank.
func QueryString(r *http.Request, name string) (string, error) {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		return "", fmt.Errorf("%w: query parameter %s is required", ErrBadParam, name)
	}
	return v, nil
}

// QueryInt parses the required query parameter name as an int in the range of
// a PostgreSQL INTEGER column.
func QueryInt(r *http.Request, name string) (int, error) {
	raw, err := QueryString(r, name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: query parameter %s must be a 32-bit integer, got %q", ErrBadParam, name, raw)
	}
	return int(v), nil
}

// QueryDecimal parses the required query parameter name as a decimal.
func QueryDecimal(r *http.Request, name string) (decimal.Decimal, error) {
	raw, err := QueryString(r, name)
	if err != nil {
		return decimal.Zero, err
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: query parameter %s must be a number, got %q", ErrBadParam, name, raw)
	}
	return v, nil
}

// dateTimeLayouts are the ISO-8601 forms accepted for date-time query values.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// QueryDateTime parses the required query parameter name as an ISO-8601 date-time.
// Values without an offset are read as UTC.
func QueryDateTime(r *http.Request, name string) (time.Time, error) {
	raw, err := QueryString(r, name)
	if err != nil {
		return time.Time{}, err
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: query parameter %s must be an ISO-8601 date-time, got %q", ErrBadParam, name, raw)
}
