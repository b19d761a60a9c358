/*
Package viz visualizes search trees on terminals.

Trees print sideways, the way one would sketch them in a REPL session:
the root sits at the left margin, the right subtree comes first, and each
level of depth moves one indentation step to the right. Node colors map to
terminal colors, so the balancing structure of a red-black tree is visible
at a glance:

	s := ordered.NewSet[int]().Insert(2).Insert(1).Insert(3)
	viz.PrintSet(s, os.Stdout)

Output respects the width of the hosting terminal and clips long node
labels.

# Status

Output format may still change.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package viz

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ordered'
func tracer() tracing.Trace {
	return tracing.Select("ordered")
}
