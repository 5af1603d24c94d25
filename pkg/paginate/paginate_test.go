package paginate

import (
	"net/url"
	"slices"
	"strings"
	"testing"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func collectWindows(items []int, size int) [][]int {
	var out [][]int
	for _, w := range Windows(items, size) {
		out = append(out, w)
	}
	return out
}

func TestWindowsPartitions(t *testing.T) {
	for _, tc := range []struct{ n, size int }{{0, 3}, {1, 3}, {3, 3}, {10, 3}, {25, 10}, {7, 1}} {
		items := seq(tc.n)
		windows := collectWindows(items, tc.size)

		if len(windows) != NumPages(tc.n, tc.size) {
			t.Fatalf("n=%d size=%d: %d windows, want %d", tc.n, tc.size, len(windows), NumPages(tc.n, tc.size))
		}

		var joined []int
		for i, w := range windows {
			if i < len(windows)-1 && len(w) != tc.size {
				t.Errorf("n=%d size=%d: window %d has len %d", tc.n, tc.size, i, len(w))
			}
			if len(w) == 0 || len(w) > tc.size {
				t.Errorf("n=%d size=%d: window %d has bad len %d", tc.n, tc.size, i, len(w))
			}
			joined = append(joined, w...)
		}
		if !slices.Equal(joined, items) {
			t.Errorf("n=%d size=%d: windows do not reassemble the input", tc.n, tc.size)
		}
	}
}

func TestWindowsDoNotAlias(t *testing.T) {
	items := seq(4)
	windows := collectWindows(items, 2)
	windows[0] = append(windows[0], 99)
	if items[2] != 3 {
		t.Error("appending to a window overwrote the source slice")
	}
}

func TestWindowsRepeatable(t *testing.T) {
	items := seq(23)
	want := collectWindows(items, 5)

	expectedPage := 1
	for page, w := range Windows(items, 5) {
		if page != expectedPage {
			t.Fatalf("page = %d, want %d", page, expectedPage)
		}
		if !slices.Equal(w, want[page-1]) {
			t.Errorf("window %d = %v, want %v", page, w, want[page-1])
		}
		expectedPage++
	}
	if expectedPage-1 != len(want) {
		t.Errorf("second pass yielded %d windows, want %d", expectedPage-1, len(want))
	}
}

func TestWindowsStopsEarly(t *testing.T) {
	count := 0
	for range Windows(seq(100), 10) {
		count++
		if count == 3 {
			break
		}
	}
	if count != 3 {
		t.Errorf("count = %d", count)
	}
}

func TestPage(t *testing.T) {
	items := seq(25)
	tests := []struct {
		page   int
		want   []int
		wantOK bool
	}{
		{1, seq(10), true},
		{3, []int{21, 22, 23, 24, 25}, true},
		{4, nil, false},
		{0, nil, false},
	}
	for _, tt := range tests {
		got, ok := Page(items, 10, tt.page)
		if ok != tt.wantOK || !slices.Equal(got, tt.want) {
			t.Errorf("Page(%d) = %v, %v; want %v, %v", tt.page, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestMatchesPrefix(t *testing.T) {
	tests := []struct {
		term   string
		fields []string
		want   bool
	}{
		{"sm", []string{"Smith Clinic"}, true},
		{"sm", []string{"Blacksmith"}, false},
		{"SM", []string{"smile dental"}, true},
		{"war", []string{"Clinic", "Warsaw"}, true},
		{"", []string{"anything"}, true},
		{"x", nil, false},
	}
	for _, tt := range tests {
		if got := MatchesPrefix(tt.term, tt.fields...); got != tt.want {
			t.Errorf("MatchesPrefix(%q, %v) = %v, want %v", tt.term, tt.fields, got, tt.want)
		}
	}
}

func TestSortDirectionAndStability(t *testing.T) {
	type rec struct {
		key string
		pos int
	}
	items := []rec{{"b", 0}, {"a", 1}, {"b", 2}, {"c", 3}}
	byKey := func(a, b rec) int { return strings.Compare(a.key, b.key) }

	asc := slices.Clone(items)
	Sort(asc, Asc, byKey)
	if got := []int{asc[0].pos, asc[1].pos, asc[2].pos, asc[3].pos}; !slices.Equal(got, []int{1, 0, 2, 3}) {
		t.Errorf("asc order = %v", got)
	}

	desc := slices.Clone(items)
	Sort(desc, Desc, byKey)
	if got := []int{desc[0].pos, desc[1].pos, desc[2].pos, desc[3].pos}; !slices.Equal(got, []int{3, 0, 2, 1}) {
		t.Errorf("desc order = %v", got)
	}
}

func TestParseQuery(t *testing.T) {
	q := ParseQuery(url.Values{})
	if q.PageSize != DefaultPageSize || q.Page != DefaultPage || q.Direction != Asc || q.Filter != "" {
		t.Errorf("defaults = %+v", q)
	}

	q = ParseQuery(url.Values{
		"search":            {"  smi "},
		"sortBy":            {"clinicName"},
		"sortDirection":     {"DESC"},
		"pageSize":          {"5"},
		"currentPage":       {"2"},
		"appointmentFilter": {"All"},
	})
	if q.Search != "smi" || q.SortBy != "clinicName" || q.Direction != Desc || q.PageSize != 5 || q.Page != 2 || q.Filter != "" {
		t.Errorf("parsed = %+v", q)
	}

	q = ParseQuery(url.Values{"pageSize": {"-1"}, "currentPage": {"abc"}, "appointmentFilter": {"canceled"}})
	if q.PageSize != DefaultPageSize || q.Page != DefaultPage || q.Filter != "canceled" {
		t.Errorf("invalid numbers = %+v", q)
	}
}

func TestApply(t *testing.T) {
	items := seq(21)

	res := Apply(items, Query{PageSize: 10, Page: 3})
	if res.TotalItems != 21 || res.NumOfPages != 3 || !slices.Equal(res.Data, []int{21}) {
		t.Errorf("page 3 = %+v", res)
	}

	res = Apply(items, Query{PageSize: 10, Page: 9})
	if res.Data == nil || len(res.Data) != 0 {
		t.Errorf("out of range page should be empty, got %v", res.Data)
	}

	res = Apply([]int{}, Query{PageSize: 10, Page: 1})
	if res.TotalItems != 0 || res.NumOfPages != 0 || len(res.Data) != 0 {
		t.Errorf("empty = %+v", res)
	}
}
