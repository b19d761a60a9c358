/*
Package rbtree provides a persistent red-black tree over an explicit
path (zipper) representation.

The package is a generic ordered-collection engine, not a friendly map/set
surface; the root package wraps it with one. Searching and updating are
driven by cuts: monotone three-way probes over the element order. A cut
generalizes "compare against key k" to "locate a boundary", so a single
descent routine serves exact lookup, lower bounds, insertion, deletion and
in-place updates, including heterogeneous lookups that probe stored elements
without constructing one.

Updates work in two phases. A descent (zoom) records, per step, the color and
element of the visited node plus the subtree on the side not taken; the
recorded frames are the path. Reconstruction walks the frames from innermost
to outermost and rebuilds the spine: plainly for in-place replacement (fill),
with insertion rebalancing (ins), or with deletion rebalancing (del), which
tracks the black-height deficit as a flag handed from frame to frame. The
balancing primitives are the classic functional ones: balance1/balance2 for
insertion repair, balanceLeft/balanceRight and appendTrees for deletion.

Nodes are immutable. Every update allocates a fresh spine and shares all
untouched subtrees with the input tree, so any previously obtained *Tree
keeps traversing its old contents; readers never need locks.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package rbtree

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
