package listview

// Allowed page sizes; requests outside the set fall back to the default.
var PageSizes = []int{20, 50, 100}

const DefaultPageSize = 20

// Ellipsis is the marker PageNumbers emits for a collapsed run of pages.
const Ellipsis = -1

// PageState is the 1-based page cursor of a list view.
type PageState struct {
	Index int
	Size  int
}

func ValidPageSize(n int) bool {
	for _, s := range PageSizes {
		if n == s {
			return true
		}
	}
	return false
}

// Page is the visible slice of a filtered collection plus its totals.
type Page[T any] struct {
	Items      []T
	Total      int
	TotalPages int
}

// TotalPages never reports less than one page, even for an empty collection.
func TotalPages(total, size int) int {
	if size <= 0 {
		size = DefaultPageSize
	}
	n := (total + size - 1) / size
	if n < 1 {
		n = 1
	}
	return n
}

// Paginate slices items for the given 1-based page index. An out-of-range
// index yields an empty slice, never an error.
func Paginate[T any](items []T, index, size int) Page[T] {
	if size <= 0 {
		size = DefaultPageSize
	}
	if index < 1 {
		index = 1
	}
	total := len(items)
	lo := (index - 1) * size
	hi := lo + size
	if lo > total {
		lo = total
	}
	if hi > total {
		hi = total
	}
	return Page[T]{
		Items:      items[lo:hi],
		Total:      total,
		TotalPages: TotalPages(total, size),
	}
}

// PageNumbers builds the pager display list. Up to 7 pages are shown in full;
// beyond that the first page, last page and current±1 stay visible and each
// collapsed run becomes a single Ellipsis marker.
func PageNumbers(current, total int) []int {
	if total < 1 {
		total = 1
	}
	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}
	if total <= 7 {
		out := make([]int, 0, total)
		for p := 1; p <= total; p++ {
			out = append(out, p)
		}
		return out
	}
	show := func(p int) bool {
		return p == 1 || p == total || (p >= current-1 && p <= current+1)
	}
	var out []int
	gap := false
	for p := 1; p <= total; p++ {
		if show(p) {
			out = append(out, p)
			gap = false
			continue
		}
		if !gap {
			out = append(out, Ellipsis)
			gap = true
		}
	}
	return out
}
