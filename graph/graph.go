package graph

import (
	"fmt"
	"iter"
)

// Weight is the constraint for edge weight types. Dijkstra sums and compares
// weights, so the integer and floating-point kinds apply.
type Weight interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// arc is one half of an undirected edge, stored in the adjacency list of its
// originating vertex.
type arc[W Weight] struct {
	to     int
	weight W
}

// Graph is an undirected weighted graph over a fixed set of vertices,
// indexed 0..n-1, represented as adjacency lists of (to, weight) arcs.
//
// Parallel edges are permitted: adding the same edge twice stores two arcs.
type Graph[W Weight] struct {
	adjacency [][]arc[W]
	size      int // number of (undirected) edges
}

// New creates a graph with order vertices and no edges.
func New[W Weight](order int) *Graph[W] {
	return &Graph[W]{
		adjacency: make([][]arc[W], order),
	}
}

// Order returns the number of vertices.
func (g *Graph[W]) Order() int {
	return len(g.adjacency)
}

// Size returns the number of edges.
func (g *Graph[W]) Size() int {
	return g.size
}

// Degree returns the number of arcs leaving vertex v. The vertex must be
// within [0, Order()-1].
func (g *Graph[W]) Degree(v int) int {
	return len(g.adjacency[v])
}

// AddEdge connects from and to with an undirected edge of the given weight,
// inserting an arc in both adjacency lists.
//
// This is the unchecked fast path: both vertices must be within
// [0, Order()-1]. TryAddEdge is the checked entry point.
func (g *Graph[W]) AddEdge(from, to int, weight W) {
	g.adjacency[from] = append(g.adjacency[from], arc[W]{to: to, weight: weight})
	g.adjacency[to] = append(g.adjacency[to], arc[W]{to: from, weight: weight})
	g.size++
}

// TryAddEdge connects from and to with an undirected edge of the given
// weight, or returns ErrVertexOutOfRange.
func (g *Graph[W]) TryAddEdge(from, to int, weight W) error {
	if err := g.checkVertex(from); err != nil {
		return err
	}
	if err := g.checkVertex(to); err != nil {
		return err
	}
	g.AddEdge(from, to, weight)
	return nil
}

// Neighbors returns an iterator over the arcs leaving vertex v, yielding
// (adjacent vertex, edge weight) pairs in insertion order.
func (g *Graph[W]) Neighbors(v int) iter.Seq2[int, W] {
	return func(yield func(int, W) bool) {
		for _, a := range g.adjacency[v] {
			if !yield(a.to, a.weight) {
				return
			}
		}
	}
}

func (g *Graph[W]) checkVertex(v int) error {
	if v < 0 || v >= len(g.adjacency) {
		return fmt.Errorf("%w: %d not within [0,%d]", ErrVertexOutOfRange, v, len(g.adjacency)-1)
	}
	return nil
}

func (g *Graph[W]) String() string {
	return fmt.Sprintf("Graph(order=%d, size=%d)", g.Order(), g.Size())
}

// noPrev marks vertices without a recorded predecessor during a search.
const noPrev = -1

// backtrack reconstructs a path from the predecessor table filled by a
// search, walking backwards from dst until src is reached.
func backtrack(prev []int, src, dst int) ([]int, error) {
	if src == dst {
		return []int{src}, nil
	}
	if prev[dst] == noPrev {
		return nil, fmt.Errorf("%w: %d unreachable from %d", ErrNoPath, dst, src)
	}
	var path []int
	for v := dst; v != src; v = prev[v] {
		path = append(path, v)
	}
	path = append(path, src)
	// reverse in place: the walk collected dst→src
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
