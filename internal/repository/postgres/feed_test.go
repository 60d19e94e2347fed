package postgres

import "testing"

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name  string
		total int64
		size  int
		want  int
	}{
		{"empty set still has one page", 0, 10, 1},
		{"single item", 1, 10, 1},
		{"exactly one page", 10, 10, 1},
		{"one over the boundary", 11, 10, 2},
		{"partial last page", 13, 10, 2},
		{"exactly two pages", 20, 10, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TotalPages(tt.total, tt.size); got != tt.want {
				t.Fatalf("TotalPages(%d, %d) = %d, want %d", tt.total, tt.size, got, tt.want)
			}
		})
	}
}

func TestClampPage(t *testing.T) {
	tests := []struct {
		name  string
		page  int
		total int64
		size  int
		want  int
	}{
		{"valid page passes through", 2, 13, 10, 2},
		{"zero clips to first", 0, 13, 10, 1},
		{"negative clips to first", -5, 13, 10, 1},
		{"past the end clips to last", 99, 13, 10, 2},
		{"empty set clips to first", 7, 0, 10, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampPage(tt.page, tt.total, tt.size); got != tt.want {
				t.Fatalf("ClampPage(%d, %d, %d) = %d, want %d", tt.page, tt.total, tt.size, got, tt.want)
			}
		})
	}
}
