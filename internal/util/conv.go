package util

import (
	"strconv"
)

// MustParseUint converts a path/query parameter to uint, returning 0 on failure.
func MustParseUint(s string) uint {
	id, _ := strconv.ParseUint(s, 10, 32)
	return uint(id)
}

// ParsePagination reads page/limit strings with sane defaults and bounds.
func ParsePagination(pageStr, limitStr string) (page, limit int) {
	page, _ = strconv.Atoi(pageStr)
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(limitStr)
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}
