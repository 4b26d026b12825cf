// Package query turns client-supplied listing parameters into concrete
// predicates, sort orders, and page bounds for the generic store.
package query

import (
	"strings"

	"github.com/ptduy/tourbase/internal/domain"
)

const (
	// DefaultPageIndex is used when the requested page index is below 1.
	DefaultPageIndex = 1
	// DefaultPageSize is used when no usable page size is requested.
	DefaultPageSize = 10
	// MaxPageSize bounds the result-set size of a single page.
	MaxPageSize = 70
)

// Normalize clamps raw listing parameters into a canonical form. It
// never fails: paging parameters are advisory, so out-of-range values
// are replaced, not rejected. The search term is trimmed (whitespace-only
// means no search) and the sort key is lowercased for table lookup.
func Normalize(spec domain.SpecParams) domain.SpecParams {
	if spec.PageIndex < 1 {
		spec.PageIndex = DefaultPageIndex
	}
	if spec.PageSize <= 0 {
		spec.PageSize = DefaultPageSize
	}
	if spec.PageSize > MaxPageSize {
		spec.PageSize = MaxPageSize
	}
	spec.Search = strings.TrimSpace(spec.Search)
	spec.Sort = strings.ToLower(strings.TrimSpace(spec.Sort))
	return spec
}
