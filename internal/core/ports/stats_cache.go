package ports

import (
	"context"
	"time"
)

// DashboardStats is the precomputed snapshot served to the dashboard.
type DashboardStats struct {
	ActiveOrders   int64     `json:"activeOrders"`
	ReadyForPickup int64     `json:"readyForPickup"`
	CompletedToday int64     `json:"completedToday"`
	RevenueToday   int64     `json:"revenueToday"`
	UnpaidOrders   int64     `json:"unpaidOrders"`
	GeneratedAt    time.Time `json:"generatedAt"`
}

// StatsCache defines the contract for caching dashboard statistics between
// refresh runs.
type StatsCache interface {
	// Put stores a stats snapshot with the given time to live.
	Put(ctx context.Context, stats DashboardStats, ttl time.Duration) error

	// Get returns the cached snapshot. The second return value is false
	// when the cache is empty or the snapshot has expired.
	Get(ctx context.Context) (DashboardStats, bool, error)
}
