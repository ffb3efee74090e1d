package gopagenav

import (
	"strconv"

	"github.com/samber/lo"
)

// TotalPages returns the number of pages needed to present itemCount items at
// perPage items per page. Empty datasets and non-positive page sizes have
// zero pages.
func TotalPages(itemCount, perPage int) int {
	if itemCount <= 0 || perPage <= 0 {
		return 0
	}

	return (itemCount + perPage - 1) / perPage
}

// ClampPage clamps page into [1, total]. Even for an empty dataset the
// result is at least 1, so it can always be fed back as a current page.
func ClampPage(page, total int) int {
	return lo.Clamp(page, 1, max(total, 1))
}

// ParsePage parses a raw page parameter, falling back to the first page when
// the value is missing, malformed or below 1.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}

	return page
}
