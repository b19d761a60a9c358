package ordered

import (
	"fmt"
	"io"

	"github.com/npillmayer/ordered/rbtree"
)

// Set2Dot outputs the internal structure of a set's tree in Graphviz DOT
// format (for debugging purposes).
func Set2Dot[E any](set Set[E], w io.Writer) {
	if err := rbtree.Tree2Dot(w, set.tree, nil); err != nil {
		T().Errorf("set DOT: %s", err.Error())
	}
}

// Map2Dot outputs the internal structure of a map's tree in Graphviz DOT
// format (for debugging purposes).
func Map2Dot[K, V any](m Map[K, V], w io.Writer) {
	pretty := func(e Entry[K, V]) string {
		return fmt.Sprintf("%v: %v", e.Key, e.Val)
	}
	if err := rbtree.Tree2Dot(w, m.tree, pretty); err != nil {
		T().Errorf("map DOT: %s", err.Error())
	}
}
