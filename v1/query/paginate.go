package query

import "errors"

var (
	// ErrUnsortedPagination is returned when paginating a query without ordering.
	ErrUnsortedPagination = errors.New("pagination requires an ordered query")

	// ErrAlreadyPaginated is returned when a window is applied twice.
	ErrAlreadyPaginated = errors.New("query is already paginated")
)

// Pageable is implemented by both backend query types.
type Pageable interface {
	Ordered() bool
	Windowed() bool
	SetWindow(offset, limit int)
}

// Paginate applies offset and limit to q exactly once, after its ordering.
// Bounds are taken as given.
func Paginate(q Pageable, offset, limit int) error {
	if !q.Ordered() {
		return ErrUnsortedPagination
	}
	if q.Windowed() {
		return ErrAlreadyPaginated
	}
	q.SetWindow(offset, limit)
	return nil
}
