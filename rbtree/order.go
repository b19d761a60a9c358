package rbtree

// CompareFunc is a three-way comparison over elements: negative when a
// orders before b, zero when they are equal, positive when after.
type CompareFunc[E any] func(a, b E) int

// Cut locates a boundary in the element order. A negative result means the
// probed element lies below the boundary, a positive result above, zero at
// the boundary.
//
// Cuts must be monotone: probing elements in ascending order yields a run of
// negatives, then zeros, then positives, where any run may be empty. Every
// CompareFunc induces cuts via CutAt; non-degenerate cuts allow searching
// for "the first element of today" and similar boundaries without
// constructing a synthetic element.
type Cut[E any] func(E) int

// CutAt returns the cut matching exactly bound under cmp.
func CutAt[E any](cmp CompareFunc[E], bound E) Cut[E] {
	return func(y E) int {
		return cmp(y, bound)
	}
}

// UpdateFunc decides the outcome of an Alter step. It receives the stored
// element when one matched the cut, together with the exists flag.
// Returning keep=false removes the element, or leaves an absent one absent;
// keep=true stores next in its place.
type UpdateFunc[E any] func(old E, exists bool) (next E, keep bool)
