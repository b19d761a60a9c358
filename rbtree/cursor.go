package rbtree

// Cursor iterates a tree in ascending order. It keeps an explicit stack of
// pending nodes, so advancing costs amortized O(1). A cursor reads the
// snapshot it was created from; later updates to other handles never show
// through it.
type Cursor[E any] struct {
	tree  *Tree[E]
	stack []*node[E] // nodes whose element is still pending, innermost last
}

// Cursor returns a cursor positioned before the least element.
func (t *Tree[E]) Cursor() *Cursor[E] {
	c := &Cursor[E]{tree: t}
	if t != nil {
		c.pushLeftSpine(t.root)
	}
	return c
}

func (c *Cursor[E]) pushLeftSpine(n *node[E]) {
	for n != nil {
		c.stack = append(c.stack, n)
		n = n.left
	}
}

// Next returns the next element in ascending order.
func (c *Cursor[E]) Next() (E, bool) {
	var zero E
	if c == nil || len(c.stack) == 0 {
		return zero, false
	}
	n := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	c.pushLeftSpine(n.right)
	return n.elem, true
}

// Seek positions the cursor before the least element at or above the
// boundary of cut, so that Next returns it. It reports whether such an
// element exists; when it does not, the cursor is exhausted.
func (c *Cursor[E]) Seek(cut Cut[E]) bool {
	if c == nil || c.tree == nil || cut == nil {
		return false
	}
	c.stack = c.stack[:0]
	n := c.tree.root
	for n != nil {
		x := cut(n.elem)
		switch {
		case x < 0:
			n = n.right
		case x > 0:
			c.stack = append(c.stack, n)
			n = n.left
		default:
			c.stack = append(c.stack, n)
			return true
		}
	}
	return len(c.stack) > 0
}
