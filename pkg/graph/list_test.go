package graph

import "testing"

func TestListOptionsNormalize(t *testing.T) {
	tests := []struct {
		name      string
		in        ListOptions
		wantPage  int
		wantLimit int
		wantOrder SortOrder
	}{
		{
			name:      "zero value gets defaults",
			in:        ListOptions{},
			wantPage:  1,
			wantLimit: 20,
			wantOrder: SortAsc,
		},
		{
			name:      "negative page clamps to 1",
			in:        ListOptions{Page: -5, Limit: 10},
			wantPage:  1,
			wantLimit: 10,
			wantOrder: SortAsc,
		},
		{
			name:      "limit above max clamps to max",
			in:        ListOptions{Page: 2, Limit: 500},
			wantPage:  2,
			wantLimit: 100,
			wantOrder: SortAsc,
		},
		{
			name:      "desc order preserved",
			in:        ListOptions{Page: 3, Limit: 25, SortOrder: SortDesc},
			wantPage:  3,
			wantLimit: 25,
			wantOrder: SortDesc,
		},
		{
			name:      "unknown order falls back to asc",
			in:        ListOptions{Page: 1, Limit: 10, SortOrder: "sideways"},
			wantPage:  1,
			wantLimit: 10,
			wantOrder: SortAsc,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			if got.Page != tt.wantPage {
				t.Errorf("Page = %d, want %d", got.Page, tt.wantPage)
			}
			if got.Limit != tt.wantLimit {
				t.Errorf("Limit = %d, want %d", got.Limit, tt.wantLimit)
			}
			if got.SortOrder != tt.wantOrder {
				t.Errorf("SortOrder = %q, want %q", got.SortOrder, tt.wantOrder)
			}
		})
	}
}

func TestListOptionsOffset(t *testing.T) {
	tests := []struct {
		page  int
		limit int
		want  int
	}{
		{page: 1, limit: 20, want: 0},
		{page: 2, limit: 20, want: 20},
		{page: 5, limit: 7, want: 28},
	}

	for _, tt := range tests {
		opts := ListOptions{Page: tt.page, Limit: tt.limit}.Normalize()
		if got := opts.Offset(); got != tt.want {
			t.Errorf("Offset(page=%d, limit=%d) = %d, want %d", tt.page, tt.limit, got, tt.want)
		}
	}
}
