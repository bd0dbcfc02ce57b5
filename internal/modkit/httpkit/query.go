package httpkit

import (
	"net/http"
	"strconv"
	"strings"
)

// Query param helpers for list endpoints. Missing or malformed values
// fall back to the default; handlers clamp ranges in the service layer

// QueryStr returns the named query parameter, trimmed, or def
func QueryStr(r *http.Request, name, def string) string {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		return def
	}
	return v
}

// QueryInt returns the named query parameter as an int or def
func QueryInt(r *http.Request, name string, def int) int {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// QueryInt64 returns the named query parameter as an int64 or def
func QueryInt64(r *http.Request, name string, def int64) int64 {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def
	}
	return n
}

// QueryFloat returns the named query parameter as a float64 or def
func QueryFloat(r *http.Request, name string, def float64) float64 {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

// QueryBool returns the named query parameter as a bool or def
func QueryBool(r *http.Request, name string, def bool) bool {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// QueryCSV splits a comma separated query parameter into trimmed,
// non-empty elements. Returns nil when the parameter is absent
func QueryCSV(r *http.Request, name string) []string {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
