package rbtree

import "fmt"

// Tree is a persistent ordered collection of elements.
//
// All update operations return a new tree and leave the receiver untouched,
// sharing unchanged subtrees between the two. A *Tree is therefore safe for
// any number of concurrent readers; a handle variable shared for writing
// needs external coordination, as any Go variable does.
//
// Trees come from New. The zero Tree has no comparator and panics on
// updates.
type Tree[E any] struct {
	cmp  CompareFunc[E]
	root *node[E]
}

// New creates an empty tree with a validated comparator.
func New[E any](cmp CompareFunc[E]) (*Tree[E], error) {
	if cmp == nil {
		return nil, fmt.Errorf("%w: comparator is required", ErrInvalidConfig)
	}
	return &Tree[E]{cmp: cmp}, nil
}

// Comparator returns the element order the tree was created with.
func (t *Tree[E]) Comparator() CompareFunc[E] {
	if t == nil {
		return nil
	}
	return t.cmp
}

// derive wraps a new root, keeping the comparator.
func (t *Tree[E]) derive(root *node[E]) *Tree[E] {
	return &Tree[E]{cmp: t.cmp, root: root}
}

// IsEmpty reports whether the tree has no elements.
func (t *Tree[E]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Len returns the number of elements. It counts, costing O(n).
func (t *Tree[E]) Len() int {
	if t == nil {
		return 0
	}
	return t.root.size()
}

// Depth returns the longest root-to-leaf node count, 0 for an empty tree.
// Red-black balancing bounds it by 2·log2(Len+1).
func (t *Tree[E]) Depth() int {
	if t == nil {
		return 0
	}
	return t.root.depth()
}

// Min returns the least element.
func (t *Tree[E]) Min() (E, bool) {
	var zero E
	if t == nil || t.root == nil {
		return zero, false
	}
	n := t.root
	for n.left != nil {
		n = n.left
	}
	return n.elem, true
}

// Max returns the greatest element.
func (t *Tree[E]) Max() (E, bool) {
	var zero E
	if t == nil || t.root == nil {
		return zero, false
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}
	return n.elem, true
}

// Find returns the element at the boundary of cut, if one exists. The
// search allocates nothing.
func (t *Tree[E]) Find(cut Cut[E]) (E, bool) {
	var zero E
	if t == nil || cut == nil {
		return zero, false
	}
	n := t.root
	for n != nil {
		c := cut(n.elem)
		switch {
		case c < 0:
			n = n.right
		case c > 0:
			n = n.left
		default:
			return n.elem, true
		}
	}
	return zero, false
}

// Get returns the stored element comparing equal to v under the tree order.
// Useful when elements carry more than their key part.
func (t *Tree[E]) Get(v E) (E, bool) {
	if t == nil || t.cmp == nil {
		var zero E
		return zero, false
	}
	return t.Find(CutAt(t.cmp, v))
}

// LowerBound returns the least element at or above the boundary of cut, if
// one exists. When several elements lie exactly at the boundary of a
// non-degenerate cut, which of them is returned is unspecified.
func (t *Tree[E]) LowerBound(cut Cut[E]) (E, bool) {
	var best E
	found := false
	if t == nil || cut == nil {
		return best, false
	}
	n := t.root
	for n != nil {
		c := cut(n.elem)
		switch {
		case c < 0:
			n = n.right
		case c > 0:
			best, found = n.elem, true
			n = n.left
		default:
			return n.elem, true
		}
	}
	return best, found
}

// Insert returns a tree with v added, replacing an element that compares
// equal to v.
func (t *Tree[E]) Insert(v E) *Tree[E] {
	assert(t != nil && t.cmp != nil, "tree not initialized; use New")
	hole, p := zoom(CutAt(t.cmp, v), t.root, nil)
	if hole == nil {
		return t.derive(p.ins(newNode(Red, nil, v, nil)))
	}
	return t.derive(p.fill(newNode(hole.color, hole.left, v, hole.right)))
}

// Erase returns a tree without the element at the boundary of cut. Erasing
// with a cut that matches nothing returns the receiver itself, so callers
// can detect no-ops by pointer comparison.
func (t *Tree[E]) Erase(cut Cut[E]) *Tree[E] {
	assert(t != nil && t.cmp != nil, "tree not initialized; use New")
	if cut == nil || t.root == nil {
		return t
	}
	hole, p := zoom(cut, t.root, nil)
	if hole == nil {
		return t
	}
	return t.derive(p.del(appendTrees(hole.left, hole.right), hole.color))
}

// Alter looks up the element at the boundary of cut and applies update to
// decide the outcome: insert when absent, replace or remove when present,
// all in a single descent. A replacement element must keep its position
// under the tree order; Alter trusts the caller on this.
func (t *Tree[E]) Alter(cut Cut[E], update UpdateFunc[E]) *Tree[E] {
	assert(t != nil && t.cmp != nil, "tree not initialized; use New")
	assert(update != nil, "alter needs an update function")
	if cut == nil {
		return t
	}
	hole, p := zoom(cut, t.root, nil)
	if hole == nil {
		var zero E
		v, keep := update(zero, false)
		if !keep {
			return t
		}
		return t.derive(p.ins(newNode(Red, nil, v, nil)))
	}
	v, keep := update(hole.elem, true)
	if !keep {
		return t.derive(p.del(appendTrees(hole.left, hole.right), hole.color))
	}
	return t.derive(p.fill(newNode(hole.color, hole.left, v, hole.right)))
}
