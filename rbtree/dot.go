package rbtree

import (
	"fmt"
	"io"
)

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Nodes are filled with their red-black color.
// pretty renders element labels and may be nil, selecting %v formatting.
func Tree2Dot[E any](w io.Writer, t *Tree[E], pretty func(E) string) error {
	if w == nil {
		return fmt.Errorf("%w: nil writer", ErrInvalidConfig)
	}
	if pretty == nil {
		pretty = func(e E) string { return fmt.Sprintf("%v", e) }
	}
	if _, err := io.WriteString(w, "strict digraph {\n"); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\tnode [fontname=Arial,fontsize=12,style=filled,fontcolor=white];\n"); err != nil {
		return err
	}
	if t != nil && t.root != nil {
		if _, _, err := dotNode(w, t.root, 1, pretty); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "}\n")
	return err
}

// dotNode emits n and its subtrees, numbering nodes depth-first. It returns
// n's id and the next free id.
func dotNode[E any](w io.Writer, n *node[E], next int, pretty func(E) string) (id int, nextFree int, err error) {
	id, next = next, next+1
	fill := "black"
	if n.color == Red {
		fill = "red"
	}
	if _, err = fmt.Fprintf(w, "\t\"%d\" [label=%q fillcolor=%s];\n", id, pretty(n.elem), fill); err != nil {
		return id, next, err
	}
	for _, child := range []*node[E]{n.left, n.right} {
		if child == nil {
			continue
		}
		var cid int
		if cid, next, err = dotNode(w, child, next, pretty); err != nil {
			return id, next, err
		}
		if _, err = fmt.Fprintf(w, "\t\"%d\" -> \"%d\";\n", id, cid); err != nil {
			return id, next, err
		}
	}
	return id, next, nil
}
