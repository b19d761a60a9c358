package rbtree

// The functions in this file are the local repair steps of the tree. They
// never mutate their arguments; every result is built from fresh nodes plus
// shared, untouched subtrees.
//
// Two kinds of temporarily illegal trees travel through them. Insertion
// moves a tree whose root is red with one red child upward until balance1 or
// balance2 rotates it away. Deletion repair may produce a red root with red
// children ("infrared"); such a tree is only ever handed to balanceLeft,
// balanceRight or a final blackening, all of which accept it.

// balance1 rebuilds a black node whose left subtree l may carry a red-red
// violation after an insertion. Without a violation the result is simply
// black(l, v, r).
func balance1[E any](l *node[E], v E, r *node[E]) *node[E] {
	if isRed(l) {
		if isRed(l.left) {
			return newNode(Red,
				setBlack(l.left),
				l.elem,
				newNode(Black, l.right, v, r))
		}
		if isRed(l.right) {
			lr := l.right
			return newNode(Red,
				newNode(Black, l.left, l.elem, lr.left),
				lr.elem,
				newNode(Black, lr.right, v, r))
		}
	}
	return newNode(Black, l, v, r)
}

// balance2 is the mirror image of balance1, repairing the right subtree r.
func balance2[E any](l *node[E], v E, r *node[E]) *node[E] {
	if isRed(r) {
		if isRed(r.left) {
			rl := r.left
			return newNode(Red,
				newNode(Black, l, v, rl.left),
				rl.elem,
				newNode(Black, rl.right, r.elem, r.right))
		}
		if isRed(r.right) {
			return newNode(Red,
				newNode(Black, l, v, r.left),
				r.elem,
				setBlack(r.right))
		}
	}
	return newNode(Black, l, v, r)
}

// balanceLeft rebuilds a node whose left subtree l is one black level short
// of its sibling r. The result either restores the local black height or
// stays one short for the caller to keep repairing; it may be infrared.
func balanceLeft[E any](l *node[E], v E, r *node[E]) *node[E] {
	if isRed(l) {
		return newNode(Red, setBlack(l), v, r)
	}
	if r != nil && r.color == Black {
		return balance2(l, v, setRed(r))
	}
	if isRed(r) && isBlack(r.left) && r.left != nil {
		return newNode(Red,
			newNode(Black, l, v, r.left.left),
			r.left.elem,
			balance2(r.left.right, r.elem, setRed(r.right)))
	}
	assert(false, "balanceLeft: sibling shape breaks red-black invariants")
	return nil
}

// balanceRight is the mirror image of balanceLeft, for a right subtree one
// black level short of its sibling l.
func balanceRight[E any](l *node[E], v E, r *node[E]) *node[E] {
	if isRed(r) {
		return newNode(Red, l, v, setBlack(r))
	}
	if l != nil && l.color == Black {
		return balance1(setRed(l), v, r)
	}
	if isRed(l) && isBlack(l.right) && l.right != nil {
		return newNode(Red,
			balance1(setRed(l.left), l.elem, l.right.left),
			l.right.elem,
			newNode(Black, l.right.right, v, r))
	}
	assert(false, "balanceRight: sibling shape breaks red-black invariants")
	return nil
}

// appendTrees joins l and r, where every element of l precedes every element
// of r and both have the same black height. This is the replacement tree for
// a deleted node: its two subtrees fused into one. The result may be
// infrared; path.del legalizes it on the way up.
func appendTrees[E any](l, r *node[E]) *node[E] {
	switch {
	case l == nil:
		return r
	case r == nil:
		return l
	case isRed(l) && isRed(r):
		m := appendTrees(l.right, r.left)
		if isRed(m) {
			return newNode(Red,
				newNode(Red, l.left, l.elem, m.left),
				m.elem,
				newNode(Red, m.right, r.elem, r.right))
		}
		return newNode(Red, l.left, l.elem, newNode(Red, m, r.elem, r.right))
	case isBlack(l) && isBlack(r):
		m := appendTrees(l.right, r.left)
		if isRed(m) {
			return newNode(Red,
				newNode(Black, l.left, l.elem, m.left),
				m.elem,
				newNode(Black, m.right, r.elem, r.right))
		}
		return balanceLeft(l.left, l.elem, newNode(Black, m, r.elem, r.right))
	case isRed(r):
		return newNode(Red, appendTrees(l, r.left), r.elem, r.right)
	default: // l red, r black
		return newNode(Red, l.left, l.elem, appendTrees(l.right, r))
	}
}
