package graph

import "errors"

// Sentinel errors for request validation. All of them are detected before
// any search runs; a request that trips one performs no partial computation.
var (
	// ErrUnknownAlgorithm indicates an algorithm name other than "dijkstra" or "astar".
	ErrUnknownAlgorithm = errors.New("graph: unknown algorithm")

	// ErrUnknownWeightPolicy indicates a weight selector outside distance/traffic/combined.
	ErrUnknownWeightPolicy = errors.New("graph: unknown weight policy")

	// ErrUnknownNode indicates a start, end, or edge endpoint missing from the declared node set.
	ErrUnknownNode = errors.New("graph: node not declared in node set")

	// ErrMissingPosition indicates a node without a 2-D position when the
	// heuristic search requires one. This is a configuration error in the
	// request, not a search failure.
	ErrMissingPosition = errors.New("graph: node has no position")
)

// IsValidation reports whether err is one of the request-validation
// sentinels, as opposed to an internal fault.
func IsValidation(err error) bool {
	return errors.Is(err, ErrUnknownAlgorithm) ||
		errors.Is(err, ErrUnknownWeightPolicy) ||
		errors.Is(err, ErrUnknownNode) ||
		errors.Is(err, ErrMissingPosition)
}
