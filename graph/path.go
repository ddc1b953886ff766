package graph

import "math"

// ReconstructPath walks predecessor links backward from end, prepending each
// node. The result is empty when end was never reached and differs from
// start; a start equal to end yields the single-node path.
func ReconstructPath(prev map[string]string, start, end string) []string {
	if _, reached := prev[end]; !reached && start != end {
		return nil
	}
	var path []string
	current := end
	for {
		path = append([]string{current}, path...)
		p, ok := prev[current]
		if !ok {
			break
		}
		current = p
	}

	return path
}

// Totals re-walks the original edge list for each consecutive pair of the
// path and sums the raw distance and traffic attributes, independent of
// whichever weight policy drove the search. With parallel edges the first
// match in declaration order wins. Totals are rounded to 2 decimal places;
// per-step snapshot costs are not.
func Totals(path []string, edges []Edge) (distance, traffic float64) {
	for i := 0; i+1 < len(path); i++ {
		for _, e := range edges {
			if (e.From == path[i] && e.To == path[i+1]) || (e.To == path[i] && e.From == path[i+1]) {
				distance += e.Distance
				traffic += e.Traffic
				break
			}
		}
	}

	return round2(distance), round2(traffic)
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
