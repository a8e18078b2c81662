/*
Package sumtree implements a sum-query segment tree over a fixed-size
numeric sequence.

Segment Trees

A segment tree caches, for every node, the sum of a contiguous slice of the
input sequence. The root covers the whole sequence, its children cover the
two halves, and so on down to leaves covering single elements. Storing the
tree as an implicit binary tree in a flat slice keeps it allocation-friendly:
for a node at slot i, its children live at slots 2i+1 and 2i+2. No pointers
are involved.

This buys logarithmic range queries at the price of logarithmic updates:

	Operation     |   Segment tree  |  Plain slice  |  Prefix sums
	--------------+-----------------+---------------+-------------
	Range sum     |   O(log n)      |   O(n)        |   O(1)
	Point update  |   O(log n)      |   O(1)        |   O(n)

The package is written as teaching material: the three operations (build,
range query, point update) follow the classic recursive formulation and the
tree's internals are observable through an invariant checker, a node walker
and a Graphviz dump. A companion package implements an adjacency-list graph
with the classic traversals (see package sumtree/graph).

Trees are not safe for concurrent use. A single exclusive lock around
queries and updates is the appropriate strategy when sharing is needed,
since an update mutates a root-to-leaf path that a concurrent query may
partially observe.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package sumtree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// tracer aliases T for call sites inside generic functions, where a type
// parameter named T shadows the function.
var tracer = T

// TreeError is an error type for the sumtree module
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrEmptyInput signals an attempt to build a tree from a zero-length
// sequence. Trees are fixed-size for their lifetime, so there is nothing
// sensible to build from.
const ErrEmptyInput = TreeError("cannot build a tree from an empty sequence")

// ErrInvalidRange is flagged whenever a query range is not contained in
// [0, n-1], or its bounds are reversed.
const ErrInvalidRange = TreeError("query range out of bounds")

// ErrIndexOutOfBounds is flagged whenever an update position is
// greater than the length of the sequence.
const ErrIndexOutOfBounds = TreeError("index out of bounds")

// ErrBrokenInvariant signals that a node's aggregate does not equal the sum
// of its children's aggregates. This cannot happen through the package API;
// it points to a mutation of the retained sequence from outside.
const ErrBrokenInvariant = TreeError("sum invariant broken")
