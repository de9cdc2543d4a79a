package helper

import "testing"

func TestBuildPaginationFromPage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		total         int64
		page, perPage int
		wantPages     int
		wantHasNext   bool
		wantHasPrev   bool
	}{
		{"empty result still one page", 0, 1, 20, 1, false, false},
		{"exact multiple", 40, 1, 20, 2, true, false},
		{"partial last page", 41, 3, 20, 3, false, true},
		{"middle page", 100, 3, 20, 5, true, true},
		{"zero per_page falls back to 20", 40, 1, 0, 2, true, false},
		{"zero page normalized to 1", 40, 0, 20, 2, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildPaginationFromPage(tt.total, tt.page, tt.perPage)
			if got.TotalPages != tt.wantPages {
				t.Fatalf("TotalPages = %d, want %d", got.TotalPages, tt.wantPages)
			}
			if got.HasNext != tt.wantHasNext {
				t.Fatalf("HasNext = %v, want %v", got.HasNext, tt.wantHasNext)
			}
			if got.HasPrev != tt.wantHasPrev {
				t.Fatalf("HasPrev = %v, want %v", got.HasPrev, tt.wantHasPrev)
			}
			if got.Total != tt.total {
				t.Fatalf("Total = %d, want %d", got.Total, tt.total)
			}
		})
	}
}
