package services

import (
	"sync"
	"time"

	"route-viz-server/models"
)

// DefaultHistoryCapacity bounds the in-memory route history.
const DefaultHistoryCapacity = 50

const historyTimeFormat = "2006-01-02 15:04:05"

// HistoryService keeps the most recent route calculations, newest first.
// Appends and clears are serialized with a mutex; the search core never
// touches this log.
type HistoryService struct {
	mu       sync.Mutex
	capacity int
	items    []models.RouteHistoryItem
}

func NewHistoryService(capacity int) *HistoryService {
	if capacity <= 0 {
		capacity = DefaultHistoryCapacity
	}

	return &HistoryService{capacity: capacity}
}

// Add stamps the item with the current time and prepends it, dropping the
// oldest entry once capacity is exceeded.
func (hs *HistoryService) Add(item models.RouteHistoryItem) {
	item.Timestamp = time.Now().Format(historyTimeFormat)

	hs.mu.Lock()
	defer hs.mu.Unlock()
	hs.items = append([]models.RouteHistoryItem{item}, hs.items...)
	if len(hs.items) > hs.capacity {
		hs.items = hs.items[:hs.capacity]
	}
}

// List returns a copy so callers cannot observe later mutations. The copy is
// never nil, keeping the JSON rendering an array.
func (hs *HistoryService) List() []models.RouteHistoryItem {
	hs.mu.Lock()
	defer hs.mu.Unlock()
	out := make([]models.RouteHistoryItem, len(hs.items))
	copy(out, hs.items)

	return out
}

// Clear empties the log.
func (hs *HistoryService) Clear() {
	hs.mu.Lock()
	defer hs.mu.Unlock()
	hs.items = nil
}
