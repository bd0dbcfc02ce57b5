// Package feed implements the marketplace feed engine: query state,
// page accumulation, bounded retry, and the staleness cache for
// slow-changing reference lists
package feed

import (
	"net/url"
	"slices"
	"strconv"
	"strings"
)

// SortDir is the sort direction for a feed query
type SortDir string

// Sort directions
const (
	SortAsc  SortDir = "asc"
	SortDesc SortDir = "desc"
)

// Query holds the current search, filter, and sort intent for one feed.
// Filters are typed methods rather than a name/value map so an unsupported
// filter is a compile error, not a runtime surprise.
// Every setter reports whether the effective value changed; callers use
// that signal to reset pagination (see Feed.Update)
type Query struct {
	search       string
	location     string
	category     string
	skills       []string
	minRating    float64
	minBudget    int64
	maxBudget    int64
	verifiedOnly bool
	sortKey      string
	sortDir      SortDir
}

// NewQuery returns a Query with everything absent and default sort
func NewQuery() *Query {
	return &Query{sortDir: SortDesc}
}

// Search returns the free-form search text
func (q *Query) Search() string { return q.search }

// SetSearch sets the free-form search text and reports change
func (q *Query) SetSearch(s string) bool {
	s = strings.TrimSpace(s)
	if q.search == s {
		return false
	}
	q.search = s
	return true
}

// SetLocation sets the location filter and reports change
func (q *Query) SetLocation(loc string) bool {
	if q.location == loc {
		return false
	}
	q.location = loc
	return true
}

// SetCategory sets the category filter and reports change
func (q *Query) SetCategory(cat string) bool {
	if q.category == cat {
		return false
	}
	q.category = cat
	return true
}

// SetSkills sets the selected skills. Equality is element-wise so
// re-selecting the same skills is a no-op
func (q *Query) SetSkills(skills []string) bool {
	if slices.Equal(q.skills, skills) {
		return false
	}
	q.skills = slices.Clone(skills)
	return true
}

// SetMinRating sets the minimum rating filter; zero clears it
func (q *Query) SetMinRating(r float64) bool {
	if q.minRating == r {
		return false
	}
	q.minRating = r
	return true
}

// SetBudgetRange sets the budget bounds; zero clears either bound
func (q *Query) SetBudgetRange(minB, maxB int64) bool {
	if q.minBudget == minB && q.maxBudget == maxB {
		return false
	}
	q.minBudget, q.maxBudget = minB, maxB
	return true
}

// SetVerifiedOnly toggles the verified-only flag and reports change
func (q *Query) SetVerifiedOnly(v bool) bool {
	if q.verifiedOnly == v {
		return false
	}
	q.verifiedOnly = v
	return true
}

// SetSort sets the sort key and direction and reports change
func (q *Query) SetSort(key string, dir SortDir) bool {
	if q.sortKey == key && q.sortDir == dir {
		return false
	}
	q.sortKey, q.sortDir = key, dir
	return true
}

// Clear resets search, filters, and sort to defaults and reports change
func (q *Query) Clear() bool {
	fresh := NewQuery()
	if q.equal(fresh) {
		return false
	}
	*q = *fresh
	return true
}

func (q *Query) equal(o *Query) bool {
	return q.search == o.search &&
		q.location == o.location &&
		q.category == o.category &&
		slices.Equal(q.skills, o.skills) &&
		q.minRating == o.minRating &&
		q.minBudget == o.minBudget &&
		q.maxBudget == o.maxBudget &&
		q.verifiedOnly == o.verifiedOnly &&
		q.sortKey == o.sortKey &&
		q.sortDir == o.sortDir
}

// Params serializes the query plus pagination into backend query parameters.
// The backend expects snake_case parameter names; absent filters are omitted
func (q *Query) Params(page, perPage int) url.Values {
	v := url.Values{}
	v.Set("page", strconv.Itoa(page))
	v.Set("per_page", strconv.Itoa(perPage))
	if q.search != "" {
		v.Set("search", q.search)
	}
	if q.location != "" {
		v.Set("location", q.location)
	}
	if q.category != "" {
		v.Set("category", q.category)
	}
	if len(q.skills) > 0 {
		v.Set("skills", strings.Join(q.skills, ","))
	}
	if q.minRating > 0 {
		v.Set("min_rating", strconv.FormatFloat(q.minRating, 'f', -1, 64))
	}
	if q.minBudget > 0 {
		v.Set("min_budget", strconv.FormatInt(q.minBudget, 10))
	}
	if q.maxBudget > 0 {
		v.Set("max_budget", strconv.FormatInt(q.maxBudget, 10))
	}
	if q.verifiedOnly {
		v.Set("verified", "true")
	}
	if q.sortKey != "" {
		v.Set("sort", q.sortKey)
		v.Set("order", string(q.sortDir))
	}
	return v
}
