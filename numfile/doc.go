/*
Package numfile provides API helpers to load number files as ordered sets.

A number file is a UTF-8 text file holding fraction literals separated by
whitespace, with '#' starting a comment that runs to the end of the line.
Files load into an ordered.Set of exact rational numbers. Loading large
files may be done asynchronously, with progress broadcast to any number of
subscribers, while a synchronous Load API is preserved.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package numfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ordered'
func tracer() tracing.Trace {
	return tracing.Select("ordered")
}
