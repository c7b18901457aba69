package pagination

import "strconv"

const (
	// DefaultLimit is the page size used when none, or an invalid one, is requested.
	DefaultLimit = 5
	// MaxLimit caps client requested page sizes.
	MaxLimit = 50
)

// Page is one slice of a larger result set.
type Page[T any] struct {
	Items []T
	Page  int
	Limit int
	Total int
	Pages int
}

// Paginate returns items[(page-1)*limit : page*limit], clamped to the slice.
// Out of range pages are empty.
func Paginate[T any](items []T, page, limit int) Page[T] {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	total := len(items)
	pages := total / limit
	if total%limit != 0 {
		pages++
	}

	p := Page[T]{Items: []T{}, Page: page, Limit: limit, Total: total, Pages: pages}

	if page > pages {
		return p
	}
	start := (page - 1) * limit
	end := start + limit
	if end > total {
		end = total
	}
	p.Items = items[start:end]
	return p
}

// ParsePage reads a page number; anything but a positive integer means 1.
func ParsePage(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// ParseLimit reads a page size; values outside 1..MaxLimit mean DefaultLimit.
func ParseLimit(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > MaxLimit {
		return DefaultLimit
	}
	return n
}
