package models

import "errors"

// ErrorInvalidPage signals a caller error (bad page/per_page), distinct from
// "nothing to paginate".
var ErrorInvalidPage = errors.New("page and per_page must be >= 1")

// Page is one slice of an already-materialised list.
type Page[T any] struct {
	Items   []T  `json:"items"`
	HasMore bool `json:"has_more"`
	Total   int  `json:"total"`
}

// Paginate slices items in memory. It never resorts: ordering is the
// caller's responsibility.
//
// Returns (nil, nil) when items is empty: "nothing to paginate" is a
// distinct outcome from an empty page past the end of the list, which is
// returned as an empty slice with HasMore=false.
func Paginate[T any](items []T, page int, perPage int) (*Page[T], error) {
	if page < 1 || perPage < 1 {
		return nil, ErrorInvalidPage
	}
	total := len(items)
	if total == 0 {
		return nil, nil
	}

	start := (page - 1) * perPage
	end := start + perPage
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return &Page[T]{
		Items:   items[start:end],
		HasMore: end < total,
		Total:   total,
	}, nil
}
