// Package graph implements the route-calculation core: graph construction
// from raw edge lists, weight derivation, Dijkstra and A* searches with a
// per-settlement state trace, and path reconstruction with raw totals.
package graph

import "fmt"

// Edge is an undirected connection between two declared nodes. From/To name
// the endpoints but carry no direction: the edge is traversable both ways at
// the same weight.
type Edge struct {
	From     string
	To       string
	Distance float64
	Traffic  float64
}

// Position is a node's 2-D placement, used only by the A* heuristic.
type Position struct {
	X float64
	Y float64
}

// neighbor is one adjacency entry: the far endpoint, the policy-derived
// weight, and the index of the source edge in the original edge list.
type neighbor struct {
	to     string
	weight float64
	edge   int
}

// Graph owns the node set and the adjacency built under a fixed weight
// policy. Built once per request and never mutated afterwards; concurrent
// requests must each build their own.
type Graph struct {
	nodes []string
	edges []Edge
	adj   map[string][]neighbor
}

// Build validates the edge list against the declared node set and constructs
// the adjacency, duplicating each edge into both directions. Neighbor lists
// keep edge declaration order; that order feeds priority-queue tie-breaking
// and must stay reproducible.
func Build(nodes []string, edges []Edge, policy WeightPolicy) (*Graph, error) {
	adj := make(map[string][]neighbor, len(nodes))
	for _, n := range nodes {
		adj[n] = nil
	}
	for i, e := range edges {
		if _, ok := adj[e.From]; !ok {
			return nil, fmt.Errorf("%w: edge %d references %q", ErrUnknownNode, i, e.From)
		}
		if _, ok := adj[e.To]; !ok {
			return nil, fmt.Errorf("%w: edge %d references %q", ErrUnknownNode, i, e.To)
		}
		w := policy.Weight(e)
		adj[e.From] = append(adj[e.From], neighbor{to: e.To, weight: w, edge: i})
		adj[e.To] = append(adj[e.To], neighbor{to: e.From, weight: w, edge: i})
	}

	return &Graph{nodes: nodes, edges: edges, adj: adj}, nil
}

// HasNode reports whether id belongs to the declared node set.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.adj[id]
	return ok
}
