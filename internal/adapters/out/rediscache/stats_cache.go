// Package rediscache caches dashboard statistics snapshots in Redis so the
// dashboard does not hit the orders table on every load.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"laundry/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const statsKey = "laundry:dashboard:stats"

// StatsCacheAdapter implements ports.StatsCache on a Redis client.
// Snapshots are stored as a single JSON value under a fixed key; expiry is
// delegated to Redis TTLs.
type StatsCacheAdapter struct {
	client redis.UniversalClient
}

// NewStatsCacheAdapter creates a stats cache backed by the given client.
func NewStatsCacheAdapter(client redis.UniversalClient) *StatsCacheAdapter {
	return &StatsCacheAdapter{client: client}
}

// Put stores a snapshot with the given time to live.
func (a *StatsCacheAdapter) Put(ctx context.Context, stats ports.DashboardStats, ttl time.Duration) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("marshal stats snapshot: %w", err)
	}

	if err = a.client.Set(ctx, statsKey, raw, ttl).Err(); err != nil {
		return fmt.Errorf("store stats snapshot: %w", err)
	}

	return nil
}

// Get returns the cached snapshot, reporting a miss when the key is absent
// or has expired.
func (a *StatsCacheAdapter) Get(ctx context.Context) (ports.DashboardStats, bool, error) {
	raw, err := a.client.Get(ctx, statsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ports.DashboardStats{}, false, nil
		}
		return ports.DashboardStats{}, false, fmt.Errorf("read stats snapshot: %w", err)
	}

	var stats ports.DashboardStats
	if err = json.Unmarshal(raw, &stats); err != nil {
		return ports.DashboardStats{}, false, fmt.Errorf("unmarshal stats snapshot: %w", err)
	}

	return stats, true, nil
}

// Compile-time check
var _ ports.StatsCache = (*StatsCacheAdapter)(nil)
