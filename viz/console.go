package viz

/*
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

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/ordered"
	"github.com/npillmayer/ordered/rbtree"
	"golang.org/x/term"
)

// TreePrinter is a type for outputting search trees to a console with a
// fixed width font.
//
// Trees print sideways: one node per line, the right subtree above its
// parent, the left subtree below, each node indented by Indent spaces per
// level of depth. Node colors select a terminal color from a palette.
type TreePrinter[E any] struct {
	Indent int // indentation per tree level, in character positions
	Width  int // line width bound; 0 means unbounded
	colors map[rbtree.Color]*color.Color
	pretty func(E) string
}

// NewTreePrinter creates a new tree printer with the default palette and
// node labels produced by the "%v" format verb.
func NewTreePrinter[E any]() *TreePrinter[E] {
	return NewTreePrinterFormat[E](nil, nil)
}

// NewTreePrinterFormat creates a new tree printer.
//
// colors is a map from node colors to terminal colors, used for display. It
// may cover just a subset of node colors; uncovered nodes print unstyled.
// pretty produces the label of a node. Either may be nil to get the default.
func NewTreePrinterFormat[E any](colors map[rbtree.Color]*color.Color, pretty func(E) string) *TreePrinter[E] {
	tp := &TreePrinter[E]{
		Indent: 4,
		colors: colors,
		pretty: pretty,
	}
	if colors == nil {
		tp.colors = makeDefaultPalette()
	}
	return tp
}

// makeDefaultPalette maps node colors to visible terminal colors. Black
// nodes print blue; true black would be invisible on dark terminals.
func makeDefaultPalette() map[rbtree.Color]*color.Color {
	palette := map[rbtree.Color]*color.Color{
		rbtree.Red:   color.New(color.FgRed),
		rbtree.Black: color.New(color.FgBlue),
	}
	return palette
}

// Print outputs tree to w, sideways. An empty or nil tree prints as a
// single marker line.
func (tp *TreePrinter[E]) Print(w io.Writer, tree *rbtree.Tree[E]) error {
	if w == nil {
		return errors.New("illegal argument: nil")
	}
	if tree == nil || tree.IsEmpty() {
		_, err := fmt.Fprintln(w, "<empty>")
		return err
	}
	nodes := make([]rbtree.NodeInfo[E], 0, 32)
	tree.WalkNodes(func(info rbtree.NodeInfo[E]) bool {
		nodes = append(nodes, info)
		return true
	})
	for i := len(nodes) - 1; i >= 0; i-- {
		if err := tp.printNode(w, nodes[i]); err != nil {
			return err
		}
	}
	return nil
}

// Sprint renders tree into a string. Errors are traced and yield a partial
// rendering.
func (tp *TreePrinter[E]) Sprint(tree *rbtree.Tree[E]) string {
	var sb strings.Builder
	if err := tp.Print(&sb, tree); err != nil {
		tracer().Errorf("tree printer: %s", err.Error())
	}
	return sb.String()
}

// PrintToConsole outputs tree to stdout.
//
// If the printer carries no width bound, a heuristic will pick one from the
// current terminal's properties (if stdout is interactive).
func (tp *TreePrinter[E]) PrintToConsole(tree *rbtree.Tree[E]) error {
	cp := *tp
	if cp.Width == 0 {
		cp.Width = widthFromTerminal()
	}
	return cp.Print(os.Stdout, tree)
}

func (tp *TreePrinter[E]) printNode(w io.Writer, info rbtree.NodeInfo[E]) error {
	pad := info.Depth * tp.Indent
	label := tp.label(info.Elem)
	if tp.Width > 0 {
		label = clip(label, tp.Width-pad)
	}
	if pad > 0 {
		if _, err := io.WriteString(w, strings.Repeat(" ", pad)); err != nil {
			return err
		}
	}
	if c, ok := tp.colors[info.Color]; ok {
		if _, err := c.Fprint(w, label); err != nil {
			return err
		}
	} else if _, err := io.WriteString(w, label); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

func (tp *TreePrinter[E]) label(v E) string {
	if tp.pretty == nil {
		return fmt.Sprintf("%v", v)
	}
	return tp.pretty(v)
}

// clip shortens s to at most max character positions, marking elisions
// with an ellipsis. Clipping counts runes, not bytes.
func clip(s string, max int) string {
	if max <= 0 {
		return "…"
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

// --- Convenience printers --------------------------------------------------

// PrintSet outputs the tree backing set to w.
func PrintSet[E any](set ordered.Set[E], w io.Writer) error {
	return NewTreePrinter[E]().Print(w, set.Tree())
}

// PrintMap outputs the tree backing m to w, labelling nodes as
// "key: value" pairs.
func PrintMap[K, V any](m ordered.Map[K, V], w io.Writer) error {
	tp := NewTreePrinterFormat(nil, func(e ordered.Entry[K, V]) string {
		return fmt.Sprintf("%v: %v", e.Key, e.Val)
	})
	return tp.Print(w, m.Tree())
}

// widthFromTerminal is a simple helper for bounding output lines. It checks
// wether stdout is a terminal, and if so it reads the terminal's width.
func widthFromTerminal() int {
	width := 65
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err == nil {
			if w > 65 {
				width = w - 10
			} else if w > 30 {
				width = w - 5
			} else if w > 10 {
				width = w
			} else {
				width = 10
			}
		}
	}
	tracer().Infof("setting line width to %d character positions", width)
	return width
}
