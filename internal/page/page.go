// Package page slices an ordered view into fixed-size pages.
package page

import (
	"strconv"

	"github.com/zakkirni/zakkirni/internal/task"
)

// Ellipsis marks a gap in a compressed page-number list.
const Ellipsis = "..."

// Result is one page of a view plus its index metadata.
type Result struct {
	Items      []task.Task
	Page       int // the clamped page actually returned
	TotalPages int
}

// Paginate returns the requested page of the view. Out-of-range page
// numbers clamp into [1, TotalPages] instead of erroring. An empty view
// yields zero total pages and an empty item list.
func Paginate(view []task.Task, page, pageSize int) Result {
	if pageSize < 1 {
		pageSize = 1
	}
	totalPages := (len(view) + pageSize - 1) / pageSize
	if totalPages == 0 {
		return Result{Items: []task.Task{}, Page: 1, TotalPages: 0}
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if end > len(view) {
		end = len(view)
	}
	return Result{Items: view[start:end], Page: page, TotalPages: totalPages}
}

// Numbers produces the compact page-number list shown by pagers: all pages
// when there are at most seven, otherwise the first page, a window of the
// current page ±1, the last page, and ellipsis markers over the gaps.
func Numbers(totalPages, current int) []string {
	var pages []string
	if totalPages <= 7 {
		for i := 1; i <= totalPages; i++ {
			pages = append(pages, strconv.Itoa(i))
		}
		return pages
	}

	pages = append(pages, "1")
	if current > 3 {
		pages = append(pages, Ellipsis)
	}
	for i := max(2, current-1); i <= min(totalPages-1, current+1); i++ {
		pages = append(pages, strconv.Itoa(i))
	}
	if current < totalPages-2 {
		pages = append(pages, Ellipsis)
	}
	pages = append(pages, strconv.Itoa(totalPages))
	return pages
}
