package models

// DashboardMetrics aggregates ticket counts for the dashboard. Open covers
// {open, in_progress}; Resolved covers {resolved, closed}. The two sets are
// disjoint and need not sum to Total.
type DashboardMetrics struct {
	Total    int64 `json:"total"`
	Open     int64 `json:"open"`
	Resolved int64 `json:"resolved"`
}
