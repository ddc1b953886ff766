package models

// RouteHistoryItem is one saved calculation in the bounded history log.
// The timestamp is stamped server-side when the item is appended.
type RouteHistoryItem struct {
	Timestamp     string   `json:"timestamp"`
	From          string   `json:"from"`
	To            string   `json:"to" binding:"required"`
	Path          []string `json:"path"`
	Algorithm     string   `json:"algorithm"`
	TotalDistance float64  `json:"totalDistance"`
	TotalTraffic  float64  `json:"totalTraffic"`
}
