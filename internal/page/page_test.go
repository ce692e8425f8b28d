//nolint:testpackage // Tests require internal access for thorough testing
package page

import (
	"strings"
	"testing"

	"github.com/zakkirni/zakkirni/internal/task"
)

func view(n int) []task.Task {
	tasks := make([]task.Task, n)
	for i := range tasks {
		tasks[i].ID = int64(i + 1)
	}
	return tasks
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name           string
		total          int
		page, pageSize int
		wantFirst      int64
		wantLen        int
		wantPage       int
		wantTotal      int
	}{
		{"first page", 25, 1, 10, 1, 10, 1, 3},
		{"middle page", 25, 2, 10, 11, 10, 2, 3},
		{"short last page", 25, 3, 10, 21, 5, 3, 3},
		{"page clamped high", 25, 99, 10, 21, 5, 3, 3},
		{"page clamped low", 25, 0, 10, 1, 10, 1, 3},
		{"exact fit", 20, 2, 10, 11, 10, 2, 2},
		{"single item", 1, 1, 10, 1, 1, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Paginate(view(tt.total), tt.page, tt.pageSize)
			if len(res.Items) != tt.wantLen {
				t.Errorf("len(Items) = %d, want %d", len(res.Items), tt.wantLen)
			}
			if tt.wantLen > 0 && res.Items[0].ID != tt.wantFirst {
				t.Errorf("first item = %d, want %d", res.Items[0].ID, tt.wantFirst)
			}
			if res.Page != tt.wantPage {
				t.Errorf("Page = %d, want %d", res.Page, tt.wantPage)
			}
			if res.TotalPages != tt.wantTotal {
				t.Errorf("TotalPages = %d, want %d", res.TotalPages, tt.wantTotal)
			}
		})
	}
}

func TestPaginateEmptyView(t *testing.T) {
	res := Paginate(nil, 3, 10)
	if res.TotalPages != 0 {
		t.Errorf("TotalPages = %d, want 0", res.TotalPages)
	}
	if res.Items == nil || len(res.Items) != 0 {
		t.Errorf("Items should be empty but non-nil, got %v", res.Items)
	}
}

func TestPaginateBadPageSize(t *testing.T) {
	res := Paginate(view(3), 1, 0)
	if res.TotalPages != 3 || len(res.Items) != 1 {
		t.Errorf("page size 0 should fall back to 1, got %d pages of %d items",
			res.TotalPages, len(res.Items))
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		name    string
		total   int
		current int
		want    string
	}{
		{"no pages", 0, 1, ""},
		{"all shown at seven", 7, 4, "1 2 3 4 5 6 7"},
		{"start of long run", 10, 1, "1 2 ... 10"},
		{"near start", 10, 3, "1 2 3 4 ... 10"},
		{"middle", 10, 5, "1 ... 4 5 6 ... 10"},
		{"near end", 10, 8, "1 ... 7 8 9 10"},
		{"end of long run", 10, 10, "1 ... 9 10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := strings.Join(Numbers(tt.total, tt.current), " ")
			if got != tt.want {
				t.Errorf("Numbers(%d, %d) = %q, want %q", tt.total, tt.current, got, tt.want)
			}
		})
	}
}
