package rbtree

// Color tags a tree node as red or black.
type Color uint8

// Node colors. The zero value is Red, matching the color of freshly
// inserted nodes.
const (
	Red Color = iota
	Black
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// node is a subtree root; a nil *node is the empty tree.
//
// Nodes are immutable after construction. Rebuilding allocates new nodes
// along the touched spine and shares every other subtree, which is what
// keeps older tree handles valid as snapshots.
type node[E any] struct {
	color Color
	left  *node[E]
	right *node[E]
	elem  E
}

func newNode[E any](col Color, left *node[E], elem E, right *node[E]) *node[E] {
	return &node[E]{color: col, left: left, right: right, elem: elem}
}

func isRed[E any](n *node[E]) bool {
	return n != nil && n.color == Red
}

func isBlack[E any](n *node[E]) bool {
	return n == nil || n.color == Black
}

// withColor returns n recolored, sharing both subtrees. n must not be nil.
func withColor[E any](n *node[E], col Color) *node[E] {
	if n.color == col {
		return n
	}
	return newNode(col, n.left, n.elem, n.right)
}

// setBlack returns n recolored black; nil stays nil.
func setBlack[E any](n *node[E]) *node[E] {
	if n == nil {
		return nil
	}
	return withColor(n, Black)
}

// setRed returns n recolored red. n must not be nil.
func setRed[E any](n *node[E]) *node[E] {
	return withColor(n, Red)
}

func (n *node[E]) size() int {
	if n == nil {
		return 0
	}
	return n.left.size() + 1 + n.right.size()
}

func (n *node[E]) depth() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.left.depth(), n.right.depth())
}
