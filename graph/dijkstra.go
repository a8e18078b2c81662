package graph

import "container/heap"

// queueItem is a (tentative cost, vertex) pair on the Dijkstra frontier.
type queueItem[W Weight] struct {
	cost   W
	vertex int
}

// frontier is a min-heap of queue items, ordered by cost with the vertex
// index as tie-breaker.
type frontier[W Weight] []queueItem[W]

func (f frontier[W]) Len() int { return len(f) }

func (f frontier[W]) Less(i, j int) bool {
	if f[i].cost != f[j].cost {
		return f[i].cost < f[j].cost
	}
	return f[i].vertex < f[j].vertex
}

func (f frontier[W]) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier[W]) Push(x any) {
	*f = append(*f, x.(queueItem[W]))
}

func (f *frontier[W]) Pop() any {
	old := *f
	item := old[len(old)-1]
	*f = old[:len(old)-1]
	return item
}

// ShortestPath runs Dijkstra's algorithm from src and returns the total cost
// of a lightest path to dst together with the path itself, src and dst
// included.
//
// Edge weights must not be negative; with the Weight constraint this is only
// a caller obligation for signed types. A destination that cannot be reached
// yields ErrNoPath. The search stops as soon as dst leaves the frontier,
// i.e., once its distance is final.
func (g *Graph[W]) ShortestPath(src, dst int) (W, []int, error) {
	var none W
	if err := g.checkVertex(src); err != nil {
		return none, nil, err
	}
	if err := g.checkVertex(dst); err != nil {
		return none, nil, err
	}
	prev := newPrevTable(g.Order())
	costs := make([]W, g.Order())
	reached := make([]bool, g.Order()) // reached[v]: costs[v] is meaningful
	visited := make([]bool, g.Order()) // visited[v]: costs[v] is final
	reached[src] = true

	queue := &frontier[W]{{cost: none, vertex: src}}
	heap.Init(queue)
	for queue.Len() > 0 {
		item := heap.Pop(queue).(queueItem[W])
		current := item.vertex
		if current == dst {
			tracer().Debugf("Dijkstra settled %d from %d at cost %v", dst, src, item.cost)
			break
		}
		if visited[current] {
			continue
		}
		visited[current] = true
		// a stale frontier entry: the vertex was re-queued with a smaller
		// cost after this item was pushed
		if item.cost != costs[current] {
			continue
		}
		for _, a := range g.adjacency[current] {
			cost := costs[current] + a.weight
			if !reached[a.to] || cost < costs[a.to] {
				reached[a.to] = true
				costs[a.to] = cost
				prev[a.to] = current
				heap.Push(queue, queueItem[W]{cost: cost, vertex: a.to})
			}
		}
	}
	path, err := backtrack(prev, src, dst)
	if err != nil {
		return none, nil, err
	}
	return costs[dst], path, nil
}
