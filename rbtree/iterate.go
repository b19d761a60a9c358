package rbtree

// ForEach walks elements in ascending order.
//
// Iteration stops early if fn returns false.
func (t *Tree[E]) ForEach(fn func(E) bool) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	t.root.forEach(fn)
}

func (n *node[E]) forEach(fn func(E) bool) bool {
	if n == nil {
		return true
	}
	if !n.left.forEach(fn) {
		return false
	}
	if !fn(n.elem) {
		return false
	}
	return n.right.forEach(fn)
}

// Fold folds fn over the elements of t in ascending order, starting from
// init. fn returns the new accumulator and whether to continue; a false
// stops the fold and returns the accumulator as it stands.
func Fold[E, A any](t *Tree[E], init A, fn func(acc A, elem E) (A, bool)) A {
	acc := init
	if t == nil || fn == nil {
		return acc
	}
	t.root.forEach(func(e E) bool {
		var cont bool
		acc, cont = fn(acc, e)
		return cont
	})
	return acc
}

// NodeInfo describes one tree node during a diagnostic walk.
type NodeInfo[E any] struct {
	Elem  E
	Color Color
	Depth int // 0 at the root
}

// WalkNodes visits every node in ascending element order, reporting color
// and depth alongside the element. Rendering and debugging tools feed on
// this; regular iteration wants ForEach. The walk stops early if visit
// returns false.
func (t *Tree[E]) WalkNodes(visit func(NodeInfo[E]) bool) {
	if t == nil || visit == nil {
		return
	}
	t.root.walkNodes(0, visit)
}

func (n *node[E]) walkNodes(depth int, visit func(NodeInfo[E]) bool) bool {
	if n == nil {
		return true
	}
	if !n.left.walkNodes(depth+1, visit) {
		return false
	}
	if !visit(NodeInfo[E]{Elem: n.elem, Color: n.color, Depth: depth}) {
		return false
	}
	return n.right.walkNodes(depth+1, visit)
}
