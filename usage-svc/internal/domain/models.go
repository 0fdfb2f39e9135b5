package domain

import "time"

// SelectionEvent mirrors the message dashboard-svc publishes on every applied
// view selection.
type SelectionEvent struct {
	Type      string    `json:"type"`
	SessionID string    `json:"session_id"`
	View      string    `json:"view"`
	Canteen   string    `json:"canteen,omitempty"`
	Filter    string    `json:"filter"`
	Timestamp time.Time `json:"timestamp"`
}

const (
	EventSelectView    = "select_view"
	EventSelectCanteen = "select_canteen"
	EventSelectFilter  = "select_filter"
)

type CanteenUsage struct {
	Canteen    string  `json:"canteen"`
	Selections float64 `json:"selections"`
}

type UsageSummary struct {
	Views    map[string]int64 `json:"views"`
	Filters  map[string]int64 `json:"filters"`
	Canteens []CanteenUsage   `json:"canteens"`
}
