package models

// Edge is one undirected connection in the request payload. "from" is a
// wire-level name only; code always uses the structural field.
type Edge struct {
	From     string  `json:"from" binding:"required"`
	To       string  `json:"to" binding:"required"`
	Distance float64 `json:"distance" binding:"gte=0"`
	Traffic  float64 `json:"traffic" binding:"gte=0"`
}

// NodePosition is a node's 2-D placement on the canvas, required by the
// heuristic algorithm.
type NodePosition struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// RouteRequest is the body of POST /calculate-route.
type RouteRequest struct {
	Nodes         []string                `json:"nodes" binding:"required"`
	Edges         []Edge                  `json:"edges"`
	Start         string                  `json:"start" binding:"required"`
	End           string                  `json:"end" binding:"required"`
	Algorithm     string                  `json:"algorithm" binding:"required"`
	WeightType    string                  `json:"weightType" binding:"required"`
	NodePositions map[string]NodePosition `json:"nodePositions"`
}
