package pagination

import (
	"testing"
)

func TestNormalizeClampsOutOfRangeValues(t *testing.T) {
	tests := []struct {
		name      string
		in        Query
		wantPage  int
		wantLimit int
	}{
		{"zero values", Query{}, 1, 10},
		{"negative page", Query{Page: -3, Limit: 20}, 1, 20},
		{"negative limit", Query{Page: 2, Limit: -1}, 2, 10},
		{"limit above cap", Query{Page: 1, Limit: 5000}, 1, 100},
		{"in range", Query{Page: 4, Limit: 25}, 4, 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.normalize()
			if got.Page != tt.wantPage || got.Limit != tt.wantLimit {
				t.Errorf("normalize() = {%d %d}, want {%d %d}", got.Page, got.Limit, tt.wantPage, tt.wantLimit)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	q := Query{Page: 3, Limit: 10}
	if got := q.Offset(); got != 20 {
		t.Errorf("Offset() = %d, want 20", got)
	}
}

func TestNewPageMeta(t *testing.T) {
	q := Query{Page: 2, Limit: 10}
	page := NewPage([]int{1, 2, 3}, 25, q, "/blogs")

	if page.Meta.TotalItems != 25 {
		t.Errorf("TotalItems = %d", page.Meta.TotalItems)
	}
	if page.Meta.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", page.Meta.TotalPages)
	}
	if page.Meta.CurrentPage != 2 {
		t.Errorf("CurrentPage = %d", page.Meta.CurrentPage)
	}

	if page.Links.Next != "/blogs?page=3&limit=10" {
		t.Errorf("Next = %q", page.Links.Next)
	}
	if page.Links.Previous != "/blogs?page=1&limit=10" {
		t.Errorf("Previous = %q", page.Links.Previous)
	}
	if page.Links.Last != "/blogs?page=3&limit=10" {
		t.Errorf("Last = %q", page.Links.Last)
	}
}

func TestNewPageBoundaries(t *testing.T) {
	// Last page: next stays put.
	last := NewPage([]int{1}, 21, Query{Page: 3, Limit: 10}, "/blogs")
	if last.Links.Next != "/blogs?page=3&limit=10" {
		t.Errorf("Next on last page = %q", last.Links.Next)
	}

	// First page: previous stays put.
	first := NewPage([]int{1}, 21, Query{Page: 1, Limit: 10}, "/blogs")
	if first.Links.Previous != "/blogs?page=1&limit=10" {
		t.Errorf("Previous on first page = %q", first.Links.Previous)
	}
}

func TestNewPageEmptyResult(t *testing.T) {
	page := NewPage[int](nil, 0, Query{Page: 1, Limit: 10}, "/blogs")

	if page.Data == nil {
		t.Error("Data must serialize as an empty array, not null")
	}
	if page.Meta.TotalPages != 1 {
		t.Errorf("TotalPages = %d, want 1", page.Meta.TotalPages)
	}
}
