package paginate

import (
	"iter"
	"net/url"
	"slices"
	"strconv"
	"strings"
)

const (
	DefaultPageSize = 10
	DefaultPage     = 1
)

// Windows lazily yields (1-based page, group) pairs over items.
// The sequence is finite and can be ranged over repeatedly.
func Windows[T any](items []T, size int) iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		if size <= 0 {
			size = max(len(items), 1)
		}
		page := 1
		for start := 0; start < len(items); start += size {
			end := min(start+size, len(items))
			if !yield(page, items[start:end:end]) {
				return
			}
			page++
		}
	}
}

// Page returns the 1-based page of items, and false when the page is out of range
func Page[T any](items []T, size, page int) ([]T, bool) {
	if size <= 0 || page < 1 {
		return nil, false
	}
	for n, window := range Windows(items, size) {
		if n == page {
			return window, true
		}
	}
	return nil, false
}

// NumPages is ceil(total / size)
func NumPages(total, size int) int {
	if size <= 0 || total <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

// MatchesPrefix reports whether any field starts with term, ignoring case.
// An empty term matches everything.
func MatchesPrefix(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.HasPrefix(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

type Direction int

const (
	Asc Direction = iota
	Desc
)

// ParseDirection maps "desc" to Desc; anything else sorts ascending
func ParseDirection(s string) Direction {
	if strings.EqualFold(s, "desc") {
		return Desc
	}
	return Asc
}

// Sort orders items in place by the three-way comparator cmp.
// Equal elements keep their relative order.
func Sort[T any](items []T, dir Direction, cmp func(a, b T) int) {
	slices.SortStableFunc(items, func(a, b T) int {
		if dir == Desc {
			return cmp(b, a)
		}
		return cmp(a, b)
	})
}

// Query carries the list parameters shared by every paginated endpoint
type Query struct {
	Search    string
	SortBy    string
	Direction Direction
	PageSize  int
	Page      int
	Filter    string
}

// ParseQuery reads search, sortBy, sortDirection, pageSize, currentPage and appointmentFilter.
// Missing or invalid numbers fall back to the defaults.
func ParseQuery(v url.Values) Query {
	q := Query{
		Search:    strings.TrimSpace(v.Get("search")),
		SortBy:    v.Get("sortBy"),
		Direction: ParseDirection(v.Get("sortDirection")),
		PageSize:  DefaultPageSize,
		Page:      DefaultPage,
		Filter:    v.Get("appointmentFilter"),
	}
	if n, err := strconv.Atoi(v.Get("pageSize")); err == nil && n > 0 {
		q.PageSize = n
	}
	if n, err := strconv.Atoi(v.Get("currentPage")); err == nil && n > 0 {
		q.Page = n
	}
	if strings.EqualFold(q.Filter, "all") {
		q.Filter = ""
	}
	return q
}

// Result is one page plus the post-filter totals
type Result[T any] struct {
	Data       []T
	TotalItems int
	NumOfPages int
}

// Apply pages items that were already filtered and sorted.
// An out-of-range page yields an empty, non-nil slice.
func Apply[T any](items []T, q Query) Result[T] {
	page, ok := Page(items, q.PageSize, q.Page)
	if !ok {
		page = []T{}
	}
	return Result[T]{
		Data:       page,
		TotalItems: len(items),
		NumOfPages: NumPages(len(items), q.PageSize),
	}
}
