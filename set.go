package ordered

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/ordered/rbtree"
)

// Set stores elements of type E in a persistent ordered red-black tree.
//
// A set created by
//
//	Set[int]{}
//
// is a valid object and behaves like the empty set for read access. Write
// access needs an element order: create sets with NewSet or NewSetOf, which
// bind the comparator. Writing to the zero value triggers an internal
// assertion panic.
//
// Due to their internal structure ordered sets have performance
// characteristics differing from Go maps.
//
//	Operation     |   Set           |  map[E]struct{}
//	--------------+-----------------+----------------
//	Contains      |   O(log n)      |   O(1)
//	Insert        |   O(log n)      |   O(1)
//	Delete        |   O(log n)      |   O(1)
//	Min/Max       |   O(log n)      |   O(n)
//	Ordered walk  |   O(n)          |   —
//	Snapshot      |   O(1)          |   O(n)
//
// Sets are persistent: Insert and Delete return a new set and leave the
// receiver untouched, so older set values stay valid, consistent snapshots.
type Set[E any] struct {
	tree *rbtree.Tree[E]
}

// NewSet creates an empty set over the natural order of E.
func NewSet[E cmp.Ordered]() Set[E] {
	s, err := NewSetOf[E](cmp.Compare)
	assert(err == nil, "NewSet: cannot build set over natural order")
	return s
}

// NewSetOf creates an empty set ordered by compare.
//
// The comparator must describe a strict total order over E. A nil comparator
// returns ErrIllegalArguments.
func NewSetOf[E any](compare rbtree.CompareFunc[E]) (Set[E], error) {
	if compare == nil {
		return Set[E]{}, ErrIllegalArguments
	}
	tree, err := rbtree.New(compare)
	if err != nil {
		return Set[E]{}, err
	}
	return setFromTree(tree), nil
}

func setFromTree[E any](tree *rbtree.Tree[E]) Set[E] {
	return Set[E]{tree: tree}
}

// writeTree guards operations that need the bound comparator.
func (s Set[E]) writeTree() *rbtree.Tree[E] {
	assert(s.tree != nil, "set write requires a set created by NewSet or NewSetOf")
	return s.tree
}

// Insert returns a set that contains v. An element comparing equal to v is
// replaced by v.
func (s Set[E]) Insert(v E) Set[E] {
	return setFromTree(s.writeTree().Insert(v))
}

// Delete returns a set without v. Deleting an absent element returns the
// receiver unchanged.
func (s Set[E]) Delete(v E) Set[E] {
	tree := s.writeTree()
	return setFromTree(tree.Erase(rbtree.CutAt(tree.Comparator(), v)))
}

// Alter returns a set edited at the position cut points to. update receives
// the element there, or the zero value and false if the position is vacant,
// and decides whether an element lives there afterwards. A single Alter
// subsumes insert, upsert and delete.
//
// If update keeps an element, it must sort at the same position; that is the
// caller's responsibility and is not checked.
func (s Set[E]) Alter(cut rbtree.Cut[E], update rbtree.UpdateFunc[E]) Set[E] {
	return setFromTree(s.writeTree().Alter(cut, update))
}

// Contains reports whether an element comparing equal to v is in the set.
func (s Set[E]) Contains(v E) bool {
	if s.tree == nil {
		return false
	}
	_, ok := s.tree.Get(v)
	return ok
}

// Find returns the element matching cut.
func (s Set[E]) Find(cut rbtree.Cut[E]) (E, bool) {
	if s.tree == nil {
		var none E
		return none, false
	}
	return s.tree.Find(cut)
}

// LowerBound returns the least element at or above the boundary cut
// describes.
func (s Set[E]) LowerBound(cut rbtree.Cut[E]) (E, bool) {
	if s.tree == nil {
		var none E
		return none, false
	}
	return s.tree.LowerBound(cut)
}

// Min returns the least element of the set.
func (s Set[E]) Min() (E, bool) {
	if s.tree == nil {
		var none E
		return none, false
	}
	return s.tree.Min()
}

// Max returns the greatest element of the set.
func (s Set[E]) Max() (E, bool) {
	if s.tree == nil {
		var none E
		return none, false
	}
	return s.tree.Max()
}

// Len returns the number of elements. It walks the tree, costing O(n).
func (s Set[E]) Len() int {
	if s.tree == nil {
		return 0
	}
	return s.tree.Len()
}

// IsEmpty reports whether the set has no elements.
func (s Set[E]) IsEmpty() bool {
	return s.tree == nil || s.tree.IsEmpty()
}

// Equal reports whether s and other hold the same elements under s's
// comparator.
func (s Set[E]) Equal(other Set[E]) bool {
	if s.tree == nil || other.tree == nil {
		return s.IsEmpty() && other.IsEmpty()
	}
	compare := s.tree.Comparator()
	next, stop := iter.Pull(other.All())
	defer stop()
	for v := range s.All() {
		w, ok := next()
		if !ok || compare(v, w) != 0 {
			return false
		}
	}
	_, more := next()
	return !more
}

// All returns an iterator over all elements in ascending order.
//
// The sequence is a snapshot: updates through other set values do not
// disturb a running walk, and the sequence may be ranged over repeatedly.
func (s Set[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		if s.tree == nil {
			return
		}
		s.tree.ForEach(yield)
	}
}

// From returns an iterator ascending from the least element at or above v.
func (s Set[E]) From(v E) iter.Seq[E] {
	return func(yield func(E) bool) {
		if s.tree == nil {
			return
		}
		cursor := s.tree.Cursor()
		if !cursor.Seek(rbtree.CutAt(s.tree.Comparator(), v)) {
			return
		}
		for e, ok := cursor.Next(); ok; e, ok = cursor.Next() {
			if !yield(e) {
				return
			}
		}
	}
}

// Each visits all elements in ascending order.
//
// Iteration stops at the first callback error and returns that error to the
// caller.
func (s Set[E]) Each(f func(E) error) error {
	if s.tree == nil {
		return nil
	}
	var err error
	s.tree.ForEach(func(v E) bool {
		err = f(v)
		return err == nil
	})
	return err
}

// Check verifies the order and balance invariants of the underlying tree.
// A healthy set returns nil.
func (s Set[E]) Check() error {
	if s.tree == nil {
		return nil
	}
	return s.tree.Check()
}

// String renders the set in ascending order, as "{1, 2, 3}".
func (s Set[E]) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	first := true
	for v := range s.All() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%v", v)
	}
	sb.WriteString("}")
	return sb.String()
}

// Tree exposes the underlying search tree for diagnostic tooling. Clients
// must treat it as read-only.
func (s Set[E]) Tree() *rbtree.Tree[E] {
	return s.tree
}
