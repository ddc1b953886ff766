package graph

// frontierItem is one entry in the search frontier. priority orders the
// heap; cost is the raw cumulative cost from the start node — equal to
// priority under Dijkstra, smaller under A* where priority also carries the
// heuristic estimate.
type frontierItem struct {
	node     string
	priority float64
	cost     float64
}

// frontier is a min-heap of *frontierItem with a pinned total order:
// ascending (priority, cumulative cost, node ID). The explicit tie-break
// keeps settlement traces reproducible across runs and rebuilds.
type frontier []*frontierItem

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}
	if f[i].cost != f[j].cost {
		return f[i].cost < f[j].cost
	}
	return f[i].node < f[j].node
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x interface{}) {
	*f = append(*f, x.(*frontierItem))
}

func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}
