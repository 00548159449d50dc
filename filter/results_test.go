package filter

import "testing"

func TestPaginate(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		pageSize  int
		page      int
		wantStart int
		wantEnd   int
		wantPages int
	}{
		{"first page", 47, 20, 1, 1, 20, 3},
		{"middle page", 47, 20, 2, 21, 40, 3},
		{"short last page", 47, 20, 3, 41, 47, 3},
		{"page beyond end clamps", 47, 20, 9, 41, 47, 3},
		{"page below one clamps", 47, 20, 0, 1, 20, 3},
		{"exact multiple", 40, 20, 2, 21, 40, 2},
		{"fewer than one page", 7, 20, 1, 1, 7, 1},
		{"empty result", 0, 20, 1, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, pages := paginate(tt.total, tt.pageSize, tt.page)
			if offset.Start != tt.wantStart || offset.End != tt.wantEnd || pages != tt.wantPages {
				t.Errorf("got (%d, %d) over %d pages, want (%d, %d) over %d",
					offset.Start, offset.End, pages, tt.wantStart, tt.wantEnd, tt.wantPages)
			}
		})
	}
}

func TestLimitClampsAndRendersOffsets(t *testing.T) {
	l := NewLimit(DefaultContext())
	if l.PageSize() != 20 {
		t.Errorf("default page size %d", l.PageSize())
	}
	for _, size := range []int{0, -5, 101} {
		if got := l.Set(size).PageSize(); got != 20 {
			t.Errorf("Set(%d) changed page size to %d", size, got)
		}
	}
	l.Set(50)
	if got := l.SQL(3); got != "LIMIT 50 OFFSET 100" {
		t.Errorf("unexpected limit clause %q", got)
	}
	if got := l.SQL(0); got != "LIMIT 50 OFFSET 0" {
		t.Errorf("page below one must clamp, got %q", got)
	}
}

func TestFailedSearchCarriesTermAndMessage(t *testing.T) {
	res := failedSearch("ab", "search term must have at least 3 characters")
	if res.SearchTerm != "ab" || res.Error == "" {
		t.Errorf("unexpected result: %+v", res)
	}
	if res.ProductCount != 0 || len(res.ProductIDs) != 0 || len(res.Products) != 0 {
		t.Errorf("failed search must be empty: %+v", res)
	}
}
