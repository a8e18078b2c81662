package graph

// DFS performs a depth-first search from src and returns the first
// discovered path to dst as a sequence of vertex indices, src and dst
// included.
//
// Depth-first means the search always follows the most recently discovered
// vertex first (a LIFO worklist), so the returned path depends on edge
// insertion order and is in general neither shortest nor lightest. A
// destination that cannot be reached yields ErrNoPath.
func (g *Graph[W]) DFS(src, dst int) ([]int, error) {
	if err := g.checkVertex(src); err != nil {
		return nil, err
	}
	if err := g.checkVertex(dst); err != nil {
		return nil, err
	}
	prev := newPrevTable(g.Order())
	visited := make([]bool, g.Order())
	stack := []int{src}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if current == dst {
			tracer().Debugf("DFS reached %d from %d", dst, src)
			break
		}
		if visited[current] {
			continue
		}
		visited[current] = true
		for _, a := range g.adjacency[current] {
			if !visited[a.to] {
				stack = append(stack, a.to)
				prev[a.to] = current
			}
		}
	}
	return backtrack(prev, src, dst)
}

// BFS performs a breadth-first search from src and returns a fewest-hops
// path to dst as a sequence of vertex indices, src and dst included.
//
// Breadth-first means all vertices at hop distance k are visited before any
// vertex at distance k+1 (a FIFO worklist); a vertex's predecessor is
// recorded once, on discovery, so the reconstructed path has minimal hop
// count. A destination that cannot be reached yields ErrNoPath.
func (g *Graph[W]) BFS(src, dst int) ([]int, error) {
	if err := g.checkVertex(src); err != nil {
		return nil, err
	}
	if err := g.checkVertex(dst); err != nil {
		return nil, err
	}
	prev := newPrevTable(g.Order())
	discovered := make([]bool, g.Order())
	discovered[src] = true
	queue := []int{src}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current == dst {
			tracer().Debugf("BFS reached %d from %d", dst, src)
			break
		}
		for _, a := range g.adjacency[current] {
			if !discovered[a.to] {
				discovered[a.to] = true
				queue = append(queue, a.to)
				prev[a.to] = current
			}
		}
	}
	return backtrack(prev, src, dst)
}

func newPrevTable(order int) []int {
	prev := make([]int, order)
	for i := range prev {
		prev[i] = noPrev
	}
	return prev
}
