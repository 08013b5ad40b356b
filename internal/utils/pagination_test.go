package utils

import (
	"reflect"
	"testing"
	"time"
)

func TestGeneratePaginationSinglePage(t *testing.T) {
	if p := GeneratePagination(1, 1); p != nil {
		t.Errorf("expected nil pagination for one page, got %+v", p)
	}
	if p := GeneratePagination(1, 0); p != nil {
		t.Errorf("expected nil pagination for no pages, got %+v", p)
	}
}

func TestGeneratePaginationWindow(t *testing.T) {
	p := GeneratePagination(5, 10)
	want := []Page{
		{Number: 1, IsLink: true},
		{Number: 0},
		{Number: 3, IsLink: true},
		{Number: 4, IsLink: true},
		{Number: 5},
		{Number: 6, IsLink: true},
		{Number: 7, IsLink: true},
		{Number: 0},
		{Number: 10, IsLink: true},
	}
	if !reflect.DeepEqual(p.Pages, want) {
		t.Errorf("Expected pages %v, got %v", want, p.Pages)
	}
	if !p.HasPrev || !p.HasNext || p.PrevPage != 4 || p.NextPage != 6 {
		t.Errorf("unexpected navigation: %+v", p)
	}
}

func TestGeneratePaginationEdges(t *testing.T) {
	p := GeneratePagination(1, 3)
	want := []Page{{Number: 1}, {Number: 2, IsLink: true}, {Number: 3, IsLink: true}}
	if !reflect.DeepEqual(p.Pages, want) {
		t.Errorf("Expected pages %v, got %v", want, p.Pages)
	}
	if p.HasPrev || !p.HasNext {
		t.Errorf("first page should only have next: %+v", p)
	}

	p = GeneratePagination(3, 3)
	if !p.HasPrev || p.HasNext {
		t.Errorf("last page should only have prev: %+v", p)
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct{ total, size, want int }{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{5, 0, 0},
	}
	for _, c := range cases {
		if got := TotalPages(c.total, c.size); got != c.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", c.total, c.size, got, c.want)
		}
	}
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	if got := Paginate(items, 2, 2); !reflect.DeepEqual(got, []int{3, 4}) {
		t.Errorf("page 2: %v", got)
	}
	if got := Paginate(items, 3, 2); !reflect.DeepEqual(got, []int{5}) {
		t.Errorf("page 3: %v", got)
	}
	if got := Paginate(items, 4, 2); len(got) != 0 {
		t.Errorf("page 4 should be empty: %v", got)
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	if got := FormatDate(d); got != "January 15, 2024" {
		t.Errorf("FormatDate = %q", got)
	}
	if got := ISODate(d); got != "2024-01-15" {
		t.Errorf("ISODate = %q", got)
	}
	if got := FormatDate(time.Time{}); got != "" {
		t.Errorf("zero time should format empty, got %q", got)
	}
}
