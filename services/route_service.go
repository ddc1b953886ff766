package services

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"route-viz-server/graph"
	"route-viz-server/models"
)

// Algorithm names accepted by POST /calculate-route.
const (
	AlgorithmDijkstra = "dijkstra"
	AlgorithmAStar    = "astar"
)

// ErrInternal masks unexpected faults hit during computation. The transport
// layer converts it to an opaque failure without leaking internal state.
var ErrInternal = errors.New("route: internal error")

// RouteService orchestrates graph construction, search, and path assembly.
// It holds no per-request state: every call builds a fresh graph and engine,
// so concurrent requests never share mutable structures.
type RouteService struct{}

func NewRouteService() *RouteService {
	return &RouteService{}
}

// CalculateRoute validates the request, builds the graph under the selected
// weight policy, runs the selected algorithm, and assembles the final path
// and raw totals. Validation errors fail fast before any search; a missing
// path is a normal result with Success=false, not an error.
func (rs *RouteService) CalculateRoute(ctx context.Context, req models.RouteRequest) (result models.RouteResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("route computation panicked: %v", r)
			result = models.RouteResult{}
			err = fmt.Errorf("%w: computation failed", ErrInternal)
		}
	}()

	policy, err := graph.ParseWeightPolicy(req.WeightType)
	if err != nil {
		return models.RouteResult{}, err
	}
	if req.Algorithm != AlgorithmDijkstra && req.Algorithm != AlgorithmAStar {
		return models.RouteResult{}, fmt.Errorf("%w: %q", graph.ErrUnknownAlgorithm, req.Algorithm)
	}

	edges := make([]graph.Edge, len(req.Edges))
	for i, e := range req.Edges {
		edges[i] = graph.Edge{From: e.From, To: e.To, Distance: e.Distance, Traffic: e.Traffic}
	}

	g, err := graph.Build(req.Nodes, edges, policy)
	if err != nil {
		return models.RouteResult{}, err
	}
	if !g.HasNode(req.Start) {
		return models.RouteResult{}, fmt.Errorf("%w: start %q", graph.ErrUnknownNode, req.Start)
	}
	if !g.HasNode(req.End) {
		return models.RouteResult{}, fmt.Errorf("%w: end %q", graph.ErrUnknownNode, req.End)
	}

	var res *graph.Result
	switch req.Algorithm {
	case AlgorithmAStar:
		positions, perr := astarPositions(req)
		if perr != nil {
			return models.RouteResult{}, perr
		}
		res = g.AStar(req.Start, req.End, positions)
	default:
		res = g.Dijkstra(req.Start, req.End)
	}

	path := graph.ReconstructPath(res.Previous, req.Start, req.End)
	if len(path) == 0 {
		return models.RouteResult{
			Success: false,
			Message: "No path found between selected nodes",
			Path:    []string{},
			Steps:   res.Steps,
		}, nil
	}

	distance, traffic := graph.Totals(path, edges)

	return models.RouteResult{
		Success:       true,
		Path:          path,
		Steps:         res.Steps,
		TotalDistance: distance,
		TotalTraffic:  traffic,
	}, nil
}

// astarPositions checks that every declared node has a position before the
// heuristic search starts, and converts to the core's representation.
func astarPositions(req models.RouteRequest) (map[string]graph.Position, error) {
	positions := make(map[string]graph.Position, len(req.Nodes))
	for _, n := range req.Nodes {
		p, ok := req.NodePositions[n]
		if !ok {
			return nil, fmt.Errorf("%w: %q", graph.ErrMissingPosition, n)
		}
		positions[n] = graph.Position{X: p.X, Y: p.Y}
	}

	return positions, nil
}
