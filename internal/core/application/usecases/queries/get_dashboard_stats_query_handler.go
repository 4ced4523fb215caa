package queries

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/ports"

	"gorm.io/gorm"
)

// GetDashboardStatsQueryHandler serves dashboard statistics, preferring a
// cached snapshot over hitting the database. The background stats job calls
// Compute directly and stores its result, so most dashboard loads are pure
// cache reads.
type GetDashboardStatsQueryHandler struct {
	db    *gorm.DB
	cache ports.StatsCache
	ttl   time.Duration
}

// NewGetDashboardStatsQueryHandler creates a handler for dashboard
// statistics queries. Snapshots computed on a cache miss are stored with
// the given time to live.
func NewGetDashboardStatsQueryHandler(
	db *gorm.DB, cache ports.StatsCache, ttl time.Duration,
) GetDashboardStatsQueryHandler {
	return GetDashboardStatsQueryHandler{db: db, cache: cache, ttl: ttl}
}

// Handle returns the current dashboard snapshot. On a cache miss the
// numbers are computed from the database and cached for subsequent loads.
func (h GetDashboardStatsQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardStatsQuery,
) (ports.DashboardStats, error) {
	if err := query.Validate(); err != nil {
		return ports.DashboardStats{}, err
	}

	cached, ok, err := h.cache.Get(ctx)
	if err == nil && ok {
		return cached, nil
	}
	// A cache read failure degrades to a database read.

	stats, err := h.Compute(ctx)
	if err != nil {
		return ports.DashboardStats{}, err
	}

	// Best effort: serving the stats matters more than caching them.
	_ = h.cache.Put(ctx, stats, h.ttl)

	return stats, nil
}

// Compute aggregates the dashboard numbers from the orders table.
// "Today" is the current calendar day in the server's local time zone.
func (h GetDashboardStatsQueryHandler) Compute(ctx context.Context) (ports.DashboardStats, error) {
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	dayEnd := dayStart.AddDate(0, 0, 1)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) FILTER (WHERE status NOT IN (?, ?)) AS active_orders,
			COUNT(*) FILTER (WHERE status = ?) AS ready_for_pickup,
			COUNT(*) FILTER (WHERE status = ? AND updated_at >= ? AND updated_at < ?) AS completed_today,
			COALESCE(SUM(total) FILTER (WHERE payment_status = ? AND created_at >= ? AND created_at < ?), 0) AS revenue_today,
			COUNT(*) FILTER (WHERE payment_status = ? AND status != ?) AS unpaid_orders
		FROM orders
	`,
		order.Completed.String(), order.Cancelled.String(),
		order.Ready.String(),
		order.Completed.String(), dayStart, dayEnd,
		order.PaymentPaid.String(), dayStart, dayEnd,
		order.PaymentPending.String(), order.Cancelled.String(),
	).Row()

	var stats ports.DashboardStats
	err := row.Scan(
		&stats.ActiveOrders,
		&stats.ReadyForPickup,
		&stats.CompletedToday,
		&stats.RevenueToday,
		&stats.UnpaidOrders,
	)
	if err != nil {
		return ports.DashboardStats{}, err
	}

	stats.GeneratedAt = now
	return stats, nil
}
