package rbtree

import "fmt"

// Check validates the red-black invariants: strictly increasing elements
// under the tree's comparator, no red node with a red child, the same
// number of black nodes on every root-to-leaf walk, and a black root.
//
// Check walks the whole tree and is meant for tests.
func (t *Tree[E]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if t.cmp == nil {
		return fmt.Errorf("%w: comparator is required", ErrInvalidConfig)
	}
	if t.root == nil {
		return nil
	}
	if t.root.color != Black {
		return fmt.Errorf("%w: root is red", ErrInvariantViolated)
	}
	if _, err := checkNode(t.root); err != nil {
		return err
	}
	var prev E
	first := true
	var orderErr error
	t.root.forEach(func(e E) bool {
		if !first && t.cmp(prev, e) >= 0 {
			orderErr = fmt.Errorf("%w: elements out of order (%v before %v)",
				ErrInvariantViolated, prev, e)
			return false
		}
		prev, first = e, false
		return true
	})
	return orderErr
}

// checkNode returns the black height of n.
func checkNode[E any](n *node[E]) (int, error) {
	if n == nil {
		return 0, nil
	}
	if isRed(n) && (isRed(n.left) || isRed(n.right)) {
		return 0, fmt.Errorf("%w: red node has a red child", ErrInvariantViolated)
	}
	lh, err := checkNode(n.left)
	if err != nil {
		return 0, err
	}
	rh, err := checkNode(n.right)
	if err != nil {
		return 0, err
	}
	if lh != rh {
		return 0, fmt.Errorf("%w: black height mismatch (%d != %d)",
			ErrInvariantViolated, lh, rh)
	}
	if n.color == Black {
		lh++
	}
	return lh, nil
}
