package btree

import "errors"

var (
	// ErrInvalidOrder is returned for orders below 3, where the
	// minimum-occupancy invariant cannot be satisfied.
	ErrInvalidOrder = errors.New("btree: order must be at least 3")

	// ErrNilCompare is returned when no comparison function is supplied.
	ErrNilCompare = errors.New("btree: comparison function is required")
)

// New creates an empty B-tree with the given order (maximum children per
// node) and key comparison function. cmp must implement a total order:
// negative for a<b, zero for a==b, positive for a>b.
func New[K, V any](order int, cmp func(a, b K) int) (*Tree[K, V], error) {
	if order < 3 {
		return nil, ErrInvalidOrder
	}
	if cmp == nil {
		return nil, ErrNilCompare
	}
	return &Tree[K, V]{
		root:  nil,
		order: order,
		cmp:   cmp,
	}, nil
}
