package ordered

import (
	"cmp"
	"iter"
	"slices"

	"github.com/npillmayer/ordered/rbtree"
)

// Builder incrementally stages elements and finalizes them into a Set.
//
// Builder collects elements in any order and materializes the set only when
// Set is called, sorting and deduplicating the staged elements before
// insertion. This keeps mutation logic in one place and spares the tree
// churn of interleaved duplicate handling.
//
// The empty instance is not usable; create builders with NewBuilder or
// NewBuilderOf.
type Builder[E any] struct {
	compare rbtree.CompareFunc[E]
	// staged keeps added elements in arrival order.
	staged []E

	done  bool
	dirty bool
	set   Set[E]
}

// NewBuilder creates a new and empty set builder over the natural order of E.
func NewBuilder[E cmp.Ordered]() *Builder[E] {
	b, err := NewBuilderOf[E](cmp.Compare)
	assert(err == nil, "NewBuilder: cannot build over natural order")
	return b
}

// NewBuilderOf creates a new and empty set builder ordered by compare.
//
// A nil comparator returns ErrIllegalArguments.
func NewBuilderOf[E any](compare rbtree.CompareFunc[E]) (*Builder[E], error) {
	if compare == nil {
		return nil, ErrIllegalArguments
	}
	return &Builder[E]{compare: compare}, nil
}

// Add stages elements for the set build.
func (b *Builder[E]) Add(elems ...E) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrSetSealed
	}
	b.staged = append(b.staged, elems...)
	if len(elems) > 0 {
		b.dirty = true
	}
	return nil
}

// AddSeq stages every element of seq for the set build.
func (b *Builder[E]) AddSeq(seq iter.Seq[E]) error {
	if b == nil || seq == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrSetSealed
	}
	n := 0
	for v := range seq {
		b.staged = append(b.staged, v)
		n++
	}
	if n > 0 {
		b.dirty = true
	}
	return nil
}

// Set returns the set built from all staged elements.
//
// It is illegal to continue adding elements after Set has been called, but
// Set may be called multiple times.
func (b *Builder[E]) Set() Set[E] {
	if b == nil {
		return Set[E]{}
	}
	if b.dirty || b.set.tree == nil {
		b.set = b.buildSet()
		b.dirty = false
	}
	b.done = true
	if b.set.IsEmpty() {
		tracer().Debugf("set builder: set is void")
	}
	return b.set
}

// Reset drops the staged build and prepares the builder for a fresh build.
func (b *Builder[E]) Reset() {
	b.staged = nil
	b.done = false
	b.dirty = false
	b.set = Set[E]{}
}

func (b *Builder[E]) buildSet() Set[E] {
	set, err := NewSetOf(b.compare)
	assert(err == nil, "builder: cannot create set")
	if len(b.staged) == 0 {
		return set
	}
	elems := make([]E, len(b.staged))
	copy(elems, b.staged)
	slices.SortStableFunc(elems, b.compare)
	// Among equal elements the most recently staged one wins, matching
	// repeated Insert semantics.
	deduped := elems[:0]
	for i := 0; i < len(elems); {
		j := i + 1
		for j < len(elems) && b.compare(elems[i], elems[j]) == 0 {
			j++
		}
		deduped = append(deduped, elems[j-1])
		i = j
	}
	for _, v := range deduped {
		set = set.Insert(v)
	}
	return set
}
