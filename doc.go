/*
Package ordered provides persistent ordered sets and maps for Go, built on a
red-black tree with an explicit search-path representation.

Ordered containers

Go's built-in map is unordered: walking it yields keys in random order, and
range queries ("everything from x on") require collecting and sorting keys
first. The containers in this package keep their elements permanently sorted
under a caller-supplied comparator. Membership tests, insertion, deletion and
neighbor queries run in logarithmic time, and an in-order walk is linear.

The containers are persistent: updates do not modify a set in place but
return a new set sharing most of its structure with the old one. Older
values remain valid, consistent snapshots, which makes handles cheap to
copy, safe to iterate during updates through other handles, and easy to
reason about.

From a paper by Chris Okasaki, 1999:

Red-Black Trees in a Functional Setting

Functional Pearl, Journal of Functional Programming 9(4).

Some data structures are difficult to implement in a functional setting,
but not red-black trees. The balancing function for insertion comes in a
single, symmetric form with a handful of cases, considerably simpler than
the multitude of cases usually presented for imperative rebalancing.

_________________________________________________________________________

Deletion does not enjoy the same popularity in the literature; this package
follows the case analysis given by Stefan Kahrs for restoring the black
height invariant while splicing out a node, with the height deficit tracked
as a flag through an explicit stack of search-path frames (a zipper). The
zipper makes one root-to-target descent serve both the lookup and the
rebuild, and is what the combined find-or-insert-or-update-or-delete
operation Alter is built from.

Searching is expressed through cuts, monotone three-way predicates over
elements, so range boundaries can be located without materializing a search
key. The degenerate cut "compare against this key" is predefined; see the
rbtree package for the contract.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package ordered

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func tracer() tracing.Trace {
	return tracing.Select("ordered")
}

// Error is an error type for the ordered module
type Error string

func (e Error) Error() string {
	return string(e)
}

// ErrSetSealed signals that a set builder has already completed a set and
// it's illegal to further add elements.
const ErrSetSealed = Error("forbidden to add elements; set has been sealed")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = Error("illegal arguments")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
