package rbtree

// A frame records one step of a descent: the color and element of the node
// descended through, the subtree on the side not taken, and which side was
// taken. A path of frames plus a subtree for the hole at its bottom carries
// the same information as the tree the descent started from.
type frame[E any] struct {
	color Color
	elem  E
	sib   *node[E]
	right bool // descent went into the right child
}

// path is the reconstruction spine of a descent, outermost frame first.
//
// A path owns its frames but shares the sibling subtrees with the input
// tree; reconstruction builds fresh spine nodes around them. Paths are local
// to a single operation and dead once it returns.
type path[E any] []frame[E]

// zoom descends from n following cut, recording one frame per step. It
// returns the node the cut matched, or nil if the descent ran off a leaf,
// together with the path down to that hole.
func zoom[E any](cut Cut[E], n *node[E], p path[E]) (*node[E], path[E]) {
	for n != nil {
		c := cut(n.elem)
		switch {
		case c < 0:
			p = append(p, frame[E]{color: n.color, elem: n.elem, sib: n.left, right: true})
			n = n.right
		case c > 0:
			p = append(p, frame[E]{color: n.color, elem: n.elem, sib: n.right, right: false})
			n = n.left
		default:
			return n, p
		}
	}
	return nil, p
}

// rebuild wraps t in f without rebalancing, keeping f's color.
func (f frame[E]) rebuild(t *node[E]) *node[E] {
	if f.right {
		return newNode(f.color, f.sib, f.elem, t)
	}
	return newNode(f.color, t, f.elem, f.sib)
}

// fill reconstructs the tree with t in the hole, innermost frame first,
// without rebalancing. t must be shape-compatible with the subtree it
// replaces: same black height, and red only where a red node stood. Element
// replacement in place satisfies this trivially.
func (p path[E]) fill(t *node[E]) *node[E] {
	for i := len(p) - 1; i >= 0; i-- {
		t = p[i].rebuild(t)
	}
	return t
}

// ins reconstructs after t replaced an empty hole, rebalancing upward. t is
// red, so a red innermost frame creates a red-red pair; red frames rebuild
// as red and leave that pending violation to the next black frame, which
// repairs it with balance1 or balance2 depending on the descent side. The
// final root is blackened.
func (p path[E]) ins(t *node[E]) *node[E] {
	for i := len(p) - 1; i >= 0; i-- {
		f := p[i]
		switch {
		case f.color == Red:
			t = f.rebuild(t)
		case f.right:
			t = balance2(f.sib, f.elem, t)
		default:
			t = balance1(t, f.elem, f.sib)
		}
	}
	return setBlack(t)
}

// del reconstructs after the zoomed node was removed and t, the fusion of
// its subtrees, took its place. removed is the color of the removed node.
//
// The black-height deficit travels as a flag, never as arithmetic: removing
// a red node leaves none, and the remaining frames rebuild plainly. While
// the deficit is set, each frame repairs with balanceLeft or balanceRight,
// and the deficit stays set exactly when the frame's own color was black; a
// red frame absorbs it. Blackening the final root absorbs a deficit that
// survives the outermost frame and legalizes an infrared repair result.
func (p path[E]) del(t *node[E], removed Color) *node[E] {
	deficit := removed == Black
	for i := len(p) - 1; i >= 0; i-- {
		f := p[i]
		if !deficit {
			t = f.rebuild(t)
			continue
		}
		if f.right {
			t = balanceRight(f.sib, f.elem, t)
		} else {
			t = balanceLeft(t, f.elem, f.sib)
		}
		deficit = f.color == Black
	}
	return setBlack(t)
}
