package utils

import (
	"math"

	"vidtube.com/pkg/constants"
)

// NormalizePage applies the listing defaults: page starts at 1, limit falls
// back to the default and never exceeds MaxLimit. page is capped so that
// (page-1)*limit stays within int64; such a page is past any data.
func NormalizePage(page, limit int64) (int64, int64) {
	if page < 1 {
		page = constants.DefaultPage
	}
	if limit < 1 {
		limit = constants.DefaultLimit
	}
	if limit > constants.MaxLimit {
		limit = constants.MaxLimit
	}
	if page > math.MaxInt64/limit {
		page = math.MaxInt64 / limit
	}
	return page, limit
}

// Offset saturates instead of wrapping for pages NormalizePage did not cap.
func Offset(page, limit int64) int {
	if page < 1 || limit < 1 {
		return 0
	}
	if page-1 > int64(math.MaxInt)/limit {
		return math.MaxInt
	}
	return int((page - 1) * limit)
}

// TotalPages is ceil(total/limit).
func TotalPages(total, limit int64) int64 {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
