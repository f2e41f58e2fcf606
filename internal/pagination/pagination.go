// Package pagination computes page metadata from limit/offset/total-count
// triples and builds the uniform list-response envelope. Limits and offsets
// arrive straight from query strings, so every function normalizes
// non-positive or unparseable values itself.
package pagination

import "math"

const (
	// Maximum is the page size substituted for absent or invalid limits.
	Maximum = 100
	// Unit is the smallest page count a response ever reports.
	Unit = 1
)

// PageSize returns the number of rows a single page holds.
func PageSize(limit int) int {
	if limit > 0 {
		return limit
	}
	return Maximum
}

// PageCount returns the number of pages needed for totalCount rows. An
// empty result set still counts as one page.
func PageCount(totalCount int64, limit int) int {
	if totalCount <= 0 {
		return Unit
	}
	count := int(math.Ceil(float64(totalCount) / float64(PageSize(limit))))
	if count == 0 {
		return Unit
	}
	return count
}

// CurrentPage returns the 1-based page the offset falls on. Offsets landing
// exactly on a page boundary belong to the page that starts there.
func CurrentPage(limit, offset int) int {
	size := PageSize(limit)
	if offset < 0 {
		offset = 0
	}
	page := int(math.Ceil(float64(offset) / float64(size)))
	if offset%size == 0 || page == 0 {
		return page + 1
	}
	return page
}

// Offset clamps a raw offset to something the storage layer accepts.
func Offset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}

// PageDetails is the metadata envelope attached to every list response.
type PageDetails struct {
	TotalDataCount int64 `json:"totalDataCount"`
	PageSize       int   `json:"pageSize"`
	PageCount      int   `json:"pageCount"`
	CurrentPage    int   `json:"currentPage"`
}

// Details computes the page metadata for one list request.
func Details(totalCount int64, limit, offset int) PageDetails {
	return PageDetails{
		TotalDataCount: totalCount,
		PageSize:       PageSize(limit),
		PageCount:      PageCount(totalCount, limit),
		CurrentPage:    CurrentPage(limit, offset),
	}
}

// ListEnvelope shapes a record set into the list-response body, keyed by the
// entity name with the page details alongside. The envelope is returned for
// empty result sets too, so every list endpoint has the same shape.
func ListEnvelope(entityKey string, rows any, totalCount int64, limit, offset int) map[string]any {
	return map[string]any{
		entityKey:     rows,
		"pageDetails": Details(totalCount, limit, offset),
	}
}
