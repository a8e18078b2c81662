package graph

import "errors"

var (
	// ErrVertexOutOfRange signals a vertex index outside [0, Order()-1].
	ErrVertexOutOfRange = errors.New("graph: vertex out of range")
	// ErrNoPath signals that the destination vertex is not reachable from
	// the source vertex.
	ErrNoPath = errors.New("graph: no path between vertices")
)
