package ordered

import (
	"cmp"
	"iter"

	"github.com/npillmayer/ordered/rbtree"
)

// Entry is one key-value pair of a Map. Entries order by key alone.
type Entry[K, V any] struct {
	Key K
	Val V
}

// Map stores key-value pairs ordered by key, with the same persistence
// characteristics as Set: updates return a new map and leave the receiver
// untouched.
//
// The zero value behaves like an empty map for read access; write access
// needs a key order, so create maps with NewMap or NewMapOf.
type Map[K, V any] struct {
	tree    *rbtree.Tree[Entry[K, V]]
	compare rbtree.CompareFunc[K]
}

// NewMap creates an empty map over the natural order of K.
func NewMap[K cmp.Ordered, V any]() Map[K, V] {
	m, err := NewMapOf[K, V](cmp.Compare)
	assert(err == nil, "NewMap: cannot build map over natural key order")
	return m
}

// NewMapOf creates an empty map ordered by compare over keys.
//
// The comparator must describe a strict total order over K. A nil comparator
// returns ErrIllegalArguments.
func NewMapOf[K, V any](compare rbtree.CompareFunc[K]) (Map[K, V], error) {
	if compare == nil {
		return Map[K, V]{}, ErrIllegalArguments
	}
	tree, err := rbtree.New(func(a, b Entry[K, V]) int {
		return compare(a.Key, b.Key)
	})
	if err != nil {
		return Map[K, V]{}, err
	}
	return Map[K, V]{tree: tree, compare: compare}, nil
}

// writeTree guards operations that need the bound key comparator.
func (m Map[K, V]) writeTree() *rbtree.Tree[Entry[K, V]] {
	assert(m.tree != nil, "map write requires a map created by NewMap or NewMapOf")
	return m.tree
}

func (m Map[K, V]) derive(tree *rbtree.Tree[Entry[K, V]]) Map[K, V] {
	return Map[K, V]{tree: tree, compare: m.compare}
}

// keyCut positions tree searches by key alone.
func (m Map[K, V]) keyCut(k K) rbtree.Cut[Entry[K, V]] {
	return func(e Entry[K, V]) int {
		return m.compare(e.Key, k)
	}
}

// Set returns a map in which k maps to v. An existing binding for k is
// replaced.
func (m Map[K, V]) Set(k K, v V) Map[K, V] {
	return m.derive(m.writeTree().Insert(Entry[K, V]{Key: k, Val: v}))
}

// Get returns the value bound to k.
func (m Map[K, V]) Get(k K) (V, bool) {
	if m.tree == nil {
		var none V
		return none, false
	}
	e, ok := m.tree.Find(m.keyCut(k))
	if !ok {
		var none V
		return none, false
	}
	return e.Val, true
}

// Contains reports whether k is bound.
func (m Map[K, V]) Contains(k K) bool {
	_, ok := m.Get(k)
	return ok
}

// Delete returns a map without a binding for k. Deleting an absent key
// returns the receiver unchanged.
func (m Map[K, V]) Delete(k K) Map[K, V] {
	return m.derive(m.writeTree().Erase(m.keyCut(k)))
}

// Alter returns a map edited at k. update receives the bound value, or the
// zero value and false when k is unbound, and decides whether a binding
// remains afterwards. One Alter subsumes insert, upsert and delete of a
// binding.
func (m Map[K, V]) Alter(k K, update func(old V, exists bool) (V, bool)) Map[K, V] {
	tree := m.writeTree()
	return m.derive(tree.Alter(m.keyCut(k),
		func(e Entry[K, V], exists bool) (Entry[K, V], bool) {
			v, keep := update(e.Val, exists)
			return Entry[K, V]{Key: k, Val: v}, keep
		}))
}

// Min returns the binding with the least key.
func (m Map[K, V]) Min() (K, V, bool) {
	if m.tree == nil {
		var e Entry[K, V]
		return e.Key, e.Val, false
	}
	e, ok := m.tree.Min()
	return e.Key, e.Val, ok
}

// Max returns the binding with the greatest key.
func (m Map[K, V]) Max() (K, V, bool) {
	if m.tree == nil {
		var e Entry[K, V]
		return e.Key, e.Val, false
	}
	e, ok := m.tree.Max()
	return e.Key, e.Val, ok
}

// Len returns the number of bindings. It walks the tree, costing O(n).
func (m Map[K, V]) Len() int {
	if m.tree == nil {
		return 0
	}
	return m.tree.Len()
}

// IsEmpty reports whether the map has no bindings.
func (m Map[K, V]) IsEmpty() bool {
	return m.tree == nil || m.tree.IsEmpty()
}

// All returns an iterator over all bindings in ascending key order.
//
// The sequence is a snapshot and may be ranged over repeatedly.
func (m Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m.tree == nil {
			return
		}
		m.tree.ForEach(func(e Entry[K, V]) bool {
			return yield(e.Key, e.Val)
		})
	}
}

// Keys returns an iterator over all keys in ascending order.
func (m Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Each visits all bindings in ascending key order.
//
// Iteration stops at the first callback error and returns that error to the
// caller.
func (m Map[K, V]) Each(f func(K, V) error) error {
	if m.tree == nil {
		return nil
	}
	var err error
	m.tree.ForEach(func(e Entry[K, V]) bool {
		err = f(e.Key, e.Val)
		return err == nil
	})
	return err
}

// Check verifies the order and balance invariants of the underlying tree.
// A healthy map returns nil.
func (m Map[K, V]) Check() error {
	if m.tree == nil {
		return nil
	}
	return m.tree.Check()
}

// Tree exposes the underlying search tree for diagnostic tooling. Clients
// must treat it as read-only.
func (m Map[K, V]) Tree() *rbtree.Tree[Entry[K, V]] {
	return m.tree
}
