package domain

// SpecParams holds the client-supplied parameters of one listing query.
// Values arrive raw and are normalized (clamped, trimmed) by the query
// engine before execution; out-of-range input is never rejected.
type SpecParams struct {
	PageIndex int    // 1-based, values < 1 are treated as 1
	PageSize  int    // clamped to the engine maximum
	Search    string // optional free-text term; empty means no search
	Sort      string // optional sort key, enumerated per entity family
}

// Pagination is the result envelope for a listing query: one page of
// entities plus the total count matching the filter before pagination.
type Pagination[T any] struct {
	PageIndex int   `json:"pageIndex"`
	PageSize  int   `json:"pageSize"`
	Count     int64 `json:"count"`
	Data      []T   `json:"data"`
}
