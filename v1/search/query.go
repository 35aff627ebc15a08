package search

// Direction is a sort direction in the search wire format.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	if d == Asc {
		return Desc
	}
	return Asc
}

// SortKey is a single {field: direction} entry of the sort list.
type SortKey struct {
	Field     string
	Direction Direction
}

// Query is a complete annotation search request: a conjunctive list of filter
// clauses, the sort keys and the request-level window.
//
// Must[0] is always the database scope clause when the query was produced by
// the annotation translator.
type Query struct {
	Must []Clause
	Sort []SortKey
	From int
	Size int

	windowed bool
}

// Ordered reports whether the query carries at least one sort key.
func (q *Query) Ordered() bool {
	return len(q.Sort) > 0
}

// Windowed reports whether a window has already been applied.
func (q *Query) Windowed() bool {
	return q.windowed
}

// SetWindow sets the request-level from/size parameters.
func (q *Query) SetWindow(offset, limit int) {
	q.From = offset
	q.Size = limit
	q.windowed = true
}
