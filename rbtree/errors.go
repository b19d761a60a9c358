package rbtree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("rbtree: invalid configuration")
	// ErrInvariantViolated signals a tree that breaks a red-black invariant.
	ErrInvariantViolated = errors.New("rbtree: invariant violated")
)
