package graph

import (
	"math"
	"testing"

	rng "github.com/leesper/go_rng"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
)

func TestShortestPathOnFigureGraph(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	g := figureGraph(t)
	cost, shortest, err := g.ShortestPath(0, 3)
	if err != nil {
		t.Fatal(err)
	}
	// lightest connection is 0-5-2-3: 14 + 1 + 11
	if cost != 26 {
		t.Errorf("ShortestPath(0,3) cost = %d, want 26", cost)
	}
	want := []int{0, 5, 2, 3}
	if len(shortest) != len(want) {
		t.Fatalf("ShortestPath(0,3) path = %v, want %v", shortest, want)
	}
	for i := range want {
		if shortest[i] != want[i] {
			t.Fatalf("ShortestPath(0,3) path = %v, want %v", shortest, want)
		}
	}
	assertWalk(t, g, shortest, 0, 3)
}

type edgeKey struct{ a, b int }

// randomConnectedGraph builds a connected graph with unique edges, mirrored
// into a gonum weighted graph serving as the oracle.
func randomConnectedGraph(uniform *rng.UniformGenerator) (*Graph[float64], *simple.WeightedUndirectedGraph) {
	order := int(uniform.Int32n(28)) + 2
	g := New[float64](order)
	oracle := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	seen := make(map[edgeKey]bool)
	addEdge := func(a, b int, w float64) {
		g.AddEdge(a, b, w)
		oracle.SetWeightedEdge(simple.WeightedEdge{
			F: simple.Node(a), T: simple.Node(b), W: w,
		})
		seen[edgeKey{a, b}] = true
		seen[edgeKey{b, a}] = true
	}
	// spanning chain first, so every vertex is reachable
	for v := 1; v < order; v++ {
		addEdge(v, int(uniform.Int32n(int32(v))), uniform.Float64Range(0.1, 10))
	}
	extras := int(uniform.Int32n(int32(2 * order)))
	for i := 0; i < extras; i++ {
		a := int(uniform.Int32n(int32(order)))
		b := int(uniform.Int32n(int32(order)))
		if a == b || seen[edgeKey{a, b}] {
			continue
		}
		addEdge(a, b, uniform.Float64Range(0.1, 10))
	}
	return g, oracle
}

func TestShortestPathAgainstGonum(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	uniform := rng.NewUniformGenerator(0xBADC0DE)
	for round := 0; round < 50; round++ {
		g, oracle := randomConnectedGraph(uniform)
		src := int(uniform.Int32n(int32(g.Order())))
		shortest := path.DijkstraFrom(simple.Node(src), oracle)
		for dst := 0; dst < g.Order(); dst++ {
			cost, p, err := g.ShortestPath(src, dst)
			if err != nil {
				t.Fatalf("round %d: ShortestPath(%d,%d) failed: %v", round, src, dst, err)
			}
			_, want := shortest.To(int64(dst))
			if math.Abs(cost-want) > 1e-9 {
				t.Fatalf("round %d: ShortestPath(%d,%d) cost = %g, oracle says %g (path %v)",
					round, src, dst, cost, want, p)
			}
		}
	}
}
