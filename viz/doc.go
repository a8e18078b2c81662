/*
Package viz renders the level structure of a sum tree to a console.

This is a debugging and teaching aid: each tree level is printed as one line
of cells, inner nodes showing their covered range and aggregate, leaves
showing their element and sequence position. Output is colorized where the
terminal supports it.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package viz

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'sumtree'
func tracer() tracing.Trace {
	return tracing.Select("sumtree")
}
