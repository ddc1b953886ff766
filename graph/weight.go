package graph

import "fmt"

// WeightPolicy selects how an edge's scalar weight is derived from its raw
// distance and traffic attributes.
type WeightPolicy string

const (
	WeightDistance WeightPolicy = "distance"
	WeightTraffic  WeightPolicy = "traffic"
	WeightCombined WeightPolicy = "combined"
)

// ParseWeightPolicy validates a weight selector coming off the wire. An
// unrecognized value is rejected here, before any graph is built.
func ParseWeightPolicy(s string) (WeightPolicy, error) {
	switch p := WeightPolicy(s); p {
	case WeightDistance, WeightTraffic, WeightCombined:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownWeightPolicy, s)
	}
}

// Weight derives the scalar the search frontier orders by. Pure and total
// for any parsed policy; nonnegative whenever the edge attributes are.
func (p WeightPolicy) Weight(e Edge) float64 {
	switch p {
	case WeightTraffic:
		return e.Traffic
	case WeightCombined:
		return e.Distance + 2*e.Traffic
	default:
		return e.Distance
	}
}
