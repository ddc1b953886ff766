package graph

import (
	"container/heap"
	"math"
)

// UnreachedSentinel is the finite placeholder rendered in snapshots for
// nodes whose cost is still unknown. Kept finite so traces serialize in
// formats without an infinity literal. Internally, absence from the cost
// map is the unreached marker; this value never enters the search itself.
const UnreachedSentinel = 999999

// heuristicScale maps position-space Euclidean distance into the weight
// units used by the edge attributes.
const heuristicScale = 10

// Snapshot captures the search state right after one node settles.
// Distances covers every declared node, unreached ones as the sentinel.
type Snapshot struct {
	Current   string             `json:"current"`
	Visited   []string           `json:"visited"`
	Distances map[string]float64 `json:"distances"`
	Previous  map[string]string  `json:"previous"`
}

// Result is the raw search outcome: predecessor links for path
// reconstruction and the per-settlement trace.
type Result struct {
	Previous map[string]string
	Steps    []Snapshot
}

// Dijkstra runs uniform-cost search from start until end settles or the
// frontier drains.
func (g *Graph) Dijkstra(start, end string) *Result {
	return g.search(start, end, nil)
}

// AStar runs heuristic-guided search. Every declared node must carry a
// position; the caller validates that before the search starts.
func (g *Graph) AStar(start, end string, positions map[string]Position) *Result {
	target := positions[end]
	h := func(node string) float64 {
		p := positions[node]
		return math.Hypot(target.X-p.X, target.Y-p.Y) / heuristicScale
	}

	return g.search(start, end, h)
}

// search is the frontier loop shared by both algorithms. A nil heuristic
// makes priority equal to cumulative cost (Dijkstra); otherwise priority is
// cost plus the heuristic estimate (A*). Relaxation never removes stale
// frontier entries; they are skipped on pop instead (lazy deletion), so only
// the first settlement of a node produces a snapshot.
func (g *Graph) search(start, end string, h func(string) float64) *Result {
	cost := make(map[string]float64, len(g.nodes)) // absence means unreached
	prev := make(map[string]string)
	settled := make(map[string]bool, len(g.nodes))
	visited := make([]string, 0, len(g.nodes))
	steps := make([]Snapshot, 0, len(g.nodes))

	cost[start] = 0
	pq := make(frontier, 0, len(g.nodes))
	heap.Init(&pq)
	first := &frontierItem{node: start}
	if h != nil {
		first.priority = h(start)
	}
	heap.Push(&pq, first)

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*frontierItem)
		current := item.node
		if settled[current] {
			continue
		}
		settled[current] = true
		visited = append(visited, current)
		steps = append(steps, g.snapshot(current, visited, cost, prev))

		if current == end {
			break
		}

		for _, nb := range g.adj[current] {
			if settled[nb.to] {
				continue
			}
			candidate := cost[current] + nb.weight
			if best, reached := cost[nb.to]; reached && candidate >= best {
				continue
			}
			cost[nb.to] = candidate
			prev[nb.to] = current
			next := &frontierItem{node: nb.to, priority: candidate, cost: candidate}
			if h != nil {
				next.priority = candidate + h(nb.to)
			}
			heap.Push(&pq, next)
		}
	}

	return &Result{Previous: prev, Steps: steps}
}

// snapshot copies the mutable maps so later relaxations cannot rewrite an
// already-recorded step.
func (g *Graph) snapshot(current string, visited []string, cost map[string]float64, prev map[string]string) Snapshot {
	distances := make(map[string]float64, len(g.nodes))
	for _, n := range g.nodes {
		if c, ok := cost[n]; ok {
			distances[n] = c
		} else {
			distances[n] = UnreachedSentinel
		}
	}
	previous := make(map[string]string, len(prev))
	for k, v := range prev {
		previous[k] = v
	}

	return Snapshot{
		Current:   current,
		Visited:   append([]string(nil), visited...),
		Distances: distances,
		Previous:  previous,
	}
}
