// Package util holds small pagination and formatting helpers shared by the usecases.
package util

import (
	"fmt"
	"math"
	"time"
)

// PageCount returns how many pages of size limit are needed for total items.
func PageCount(total int64, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}

	return int((total + int64(limit) - 1) / int64(limit))
}

// PageOffset returns the number of items to skip for a 1-based page.
// Pages whose offset would overflow int saturate at math.MaxInt, which selects nothing.
func PageOffset(page, limit int) int {
	if page <= 1 || limit <= 0 {
		return 0
	}
	if page-1 > math.MaxInt/limit {
		return math.MaxInt
	}

	return (page - 1) * limit
}

// ClampPageSize applies the default when limit is unset and caps it at maxLimit.
func ClampPageSize(limit, defaultLimit, maxLimit int) int {
	if limit <= 0 {
		limit = defaultLimit
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}

	return limit
}

// MonthLabel formats a calendar month as "Jan 2026".
func MonthLabel(year, month int) string {
	if month < 1 || month > 12 {
		return fmt.Sprintf("%d-%02d", year, month)
	}

	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Format("Jan 2006")
}
