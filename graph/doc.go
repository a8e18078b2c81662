/*
Package graph provides a compact adjacency-list representation of an
undirected weighted graph, together with the classic search algorithms:
depth-first search, breadth-first search, and Dijkstra shortest paths.

The package is a teaching companion to the range-sum tree in the parent
package: vertices are plain indices 0..n-1, edges are appended to per-vertex
arc lists, and each search returns a reconstructed src→dst path. The vertex
count is fixed at construction time; there is no removal of vertices or
edges.

Graphs are not safe for concurrent mutation; wrap shared instances in an
external lock.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package graph

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'sumtree'
func tracer() tracing.Trace {
	return tracing.Select("sumtree")
}
