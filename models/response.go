package models

import "route-viz-server/graph"

// RouteResult is the response body for route calculation. Success is false
// for the well-formed "no path exists" outcome, which still carries the
// trace accumulated before the frontier drained.
type RouteResult struct {
	Success       bool             `json:"success"`
	Message       string           `json:"message,omitempty"`
	Path          []string         `json:"path"`
	Steps         []graph.Snapshot `json:"steps"`
	TotalDistance float64          `json:"totalDistance"`
	TotalTraffic  float64          `json:"totalTraffic"`
}

type ApiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is returned for rejected or failed requests.
type ErrorResponse struct {
	Success   bool     `json:"success"`
	Error     ApiError `json:"error"`
	RequestID string   `json:"requestId"`
}
