package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"route-viz-server/graph"
)

// squareGraph is the 4-node ring used throughout: the short way around
// (A-B-C-D) costs 3, the direct edge A-D costs 5.
func squareGraph() ([]string, []graph.Edge) {
	nodes := []string{"A", "B", "C", "D"}
	edges := []graph.Edge{
		{From: "A", To: "B", Distance: 1},
		{From: "B", To: "C", Distance: 1},
		{From: "C", To: "D", Distance: 1},
		{From: "A", To: "D", Distance: 5},
	}
	return nodes, edges
}

func unitSquarePositions() map[string]graph.Position {
	return map[string]graph.Position{
		"A": {X: 0, Y: 0},
		"B": {X: 1, Y: 0},
		"C": {X: 1, Y: 1},
		"D": {X: 0, Y: 1},
	}
}

func TestDijkstra_SquareGraph(t *testing.T) {
	nodes, edges := squareGraph()
	g, err := graph.Build(nodes, edges, graph.WeightDistance)
	require.NoError(t, err)

	res := g.Dijkstra("A", "D")
	path := graph.ReconstructPath(res.Previous, "A", "D")
	require.Equal(t, []string{"A", "B", "C", "D"}, path)

	distance, traffic := graph.Totals(path, edges)
	assert.Equal(t, 3.0, distance)
	assert.Equal(t, 0.0, traffic)
}

func TestAStar_MatchesDijkstraOnSquare(t *testing.T) {
	nodes, edges := squareGraph()
	g, err := graph.Build(nodes, edges, graph.WeightDistance)
	require.NoError(t, err)

	dij := g.Dijkstra("A", "D")
	ast := g.AStar("A", "D", unitSquarePositions())

	dijPath := graph.ReconstructPath(dij.Previous, "A", "D")
	astPath := graph.ReconstructPath(ast.Previous, "A", "D")
	require.Equal(t, dijPath, astPath)

	dijDist, _ := graph.Totals(dijPath, edges)
	astDist, _ := graph.Totals(astPath, edges)
	assert.Equal(t, dijDist, astDist)
}

func TestSearch_StartEqualsEnd(t *testing.T) {
	nodes, edges := squareGraph()
	g, err := graph.Build(nodes, edges, graph.WeightDistance)
	require.NoError(t, err)

	res := g.Dijkstra("B", "B")
	require.Len(t, res.Steps, 1)
	assert.Equal(t, "B", res.Steps[0].Current)

	path := graph.ReconstructPath(res.Previous, "B", "B")
	require.Equal(t, []string{"B"}, path)

	distance, traffic := graph.Totals(path, edges)
	assert.Zero(t, distance)
	assert.Zero(t, traffic)
}

func TestSearch_UnreachableEnd(t *testing.T) {
	// E and F form a component disconnected from the square.
	nodes := []string{"A", "B", "E", "F"}
	edges := []graph.Edge{
		{From: "A", To: "B", Distance: 1},
		{From: "E", To: "F", Distance: 1},
	}
	g, err := graph.Build(nodes, edges, graph.WeightDistance)
	require.NoError(t, err)

	res := g.Dijkstra("A", "F")
	path := graph.ReconstructPath(res.Previous, "A", "F")
	assert.Empty(t, path)

	// One snapshot per node reachable from A before exhaustion.
	require.Len(t, res.Steps, 2)
	assert.Equal(t, "A", res.Steps[0].Current)
	assert.Equal(t, "B", res.Steps[1].Current)
}

func TestSearch_SnapshotSentinelAndCopies(t *testing.T) {
	nodes, edges := squareGraph()
	g, err := graph.Build(nodes, edges, graph.WeightDistance)
	require.NoError(t, err)

	res := g.Dijkstra("A", "D")
	first := res.Steps[0]
	assert.Equal(t, "A", first.Current)
	assert.Equal(t, []string{"A"}, first.Visited)
	assert.Equal(t, 0.0, first.Distances["A"])
	// C is untouched after A settles; it must render as the finite sentinel.
	assert.Equal(t, float64(graph.UnreachedSentinel), first.Distances["C"])
	assert.Empty(t, first.Previous)

	// Snapshots are copies: later steps must not have rewritten the first.
	last := res.Steps[len(res.Steps)-1]
	assert.Equal(t, "D", last.Current)
	assert.Equal(t, float64(graph.UnreachedSentinel), first.Distances["C"])
	assert.NotEqual(t, first.Visited, last.Visited)

	// Every declared node appears in every snapshot's cost map.
	for _, step := range res.Steps {
		assert.Len(t, step.Distances, len(nodes))
	}
}

func TestSearch_Deterministic(t *testing.T) {
	nodes, edges := squareGraph()

	run := func() *graph.Result {
		g, err := graph.Build(nodes, edges, graph.WeightDistance)
		require.NoError(t, err)
		return g.Dijkstra("A", "D")
	}

	first := run()
	second := run()
	assert.Equal(t, first.Steps, second.Steps)
	assert.Equal(t, first.Previous, second.Previous)
}

func TestSearch_TieBreakIsLexicographic(t *testing.T) {
	// B and A sit at the same cost from S; declaration order favors B, but
	// the pinned frontier order settles A first.
	nodes := []string{"S", "B", "A"}
	edges := []graph.Edge{
		{From: "S", To: "B", Distance: 1},
		{From: "S", To: "A", Distance: 1},
	}
	g, err := graph.Build(nodes, edges, graph.WeightDistance)
	require.NoError(t, err)

	res := g.Dijkstra("S", "B")
	require.True(t, len(res.Steps) >= 2)
	assert.Equal(t, "S", res.Steps[0].Current)
	assert.Equal(t, "A", res.Steps[1].Current)
}

// pathCost sums policy weights along a path, matching edges in either
// orientation, first declaration wins.
func pathCost(path []string, edges []graph.Edge, policy graph.WeightPolicy) float64 {
	var total float64
	for i := 0; i+1 < len(path); i++ {
		for _, e := range edges {
			if (e.From == path[i] && e.To == path[i+1]) || (e.To == path[i] && e.From == path[i+1]) {
				total += policy.Weight(e)
				break
			}
		}
	}
	return total
}

// enumeratePaths lists every simple path between start and end.
func enumeratePaths(nodes []string, edges []graph.Edge, start, end string) [][]string {
	adj := map[string][]string{}
	for _, e := range edges {
		adj[e.From] = append(adj[e.From], e.To)
		adj[e.To] = append(adj[e.To], e.From)
	}

	var paths [][]string
	seen := map[string]bool{start: true}
	var walk func(node string, path []string)
	walk = func(node string, path []string) {
		if node == end {
			paths = append(paths, append([]string(nil), path...))
			return
		}
		for _, next := range adj[node] {
			if seen[next] {
				continue
			}
			seen[next] = true
			walk(next, append(path, next))
			seen[next] = false
		}
	}
	walk(start, []string{start})
	return paths
}

func TestDijkstra_OptimalAgainstBruteForce(t *testing.T) {
	nodes := []string{"A", "B", "C", "D", "E", "F"}
	edges := []graph.Edge{
		{From: "A", To: "B", Distance: 2, Traffic: 4},
		{From: "A", To: "C", Distance: 5, Traffic: 1},
		{From: "B", To: "C", Distance: 1, Traffic: 2},
		{From: "B", To: "D", Distance: 4, Traffic: 0},
		{From: "C", To: "D", Distance: 2, Traffic: 3},
		{From: "C", To: "E", Distance: 6, Traffic: 1},
		{From: "D", To: "E", Distance: 1, Traffic: 5},
		{From: "D", To: "F", Distance: 7, Traffic: 2},
		{From: "E", To: "F", Distance: 2, Traffic: 1},
	}

	for _, policy := range []graph.WeightPolicy{graph.WeightDistance, graph.WeightTraffic, graph.WeightCombined} {
		g, err := graph.Build(nodes, edges, policy)
		require.NoError(t, err)

		res := g.Dijkstra("A", "F")
		path := graph.ReconstructPath(res.Previous, "A", "F")
		require.NotEmpty(t, path, "policy %s", policy)

		best := pathCost(path, edges, policy)
		for _, candidate := range enumeratePaths(nodes, edges, "A", "F") {
			assert.LessOrEqual(t, best, pathCost(candidate, edges, policy),
				"policy %s: found cheaper path %v", policy, candidate)
		}
	}
}

func TestAStar_AdmissibleHeuristicMatchesDijkstraCost(t *testing.T) {
	// Positions lie within a unit box, so Euclidean/10 never overestimates
	// the true remaining cost: the heuristic is admissible.
	nodes := []string{"A", "B", "C", "D", "E"}
	edges := []graph.Edge{
		{From: "A", To: "B", Distance: 3, Traffic: 1},
		{From: "B", To: "C", Distance: 2, Traffic: 1},
		{From: "A", To: "D", Distance: 1, Traffic: 1},
		{From: "D", To: "C", Distance: 6, Traffic: 1},
		{From: "C", To: "E", Distance: 1, Traffic: 1},
		{From: "D", To: "E", Distance: 9, Traffic: 1},
	}
	positions := map[string]graph.Position{
		"A": {X: 0, Y: 0},
		"B": {X: 0.3, Y: 0.1},
		"C": {X: 0.6, Y: 0.2},
		"D": {X: 0.2, Y: 0.5},
		"E": {X: 1, Y: 0.4},
	}

	g, err := graph.Build(nodes, edges, graph.WeightDistance)
	require.NoError(t, err)

	dijPath := graph.ReconstructPath(g.Dijkstra("A", "E").Previous, "A", "E")
	astPath := graph.ReconstructPath(g.AStar("A", "E", positions).Previous, "A", "E")
	require.NotEmpty(t, dijPath)
	require.NotEmpty(t, astPath)
	assert.Equal(t,
		pathCost(dijPath, edges, graph.WeightDistance),
		pathCost(astPath, edges, graph.WeightDistance))
}
