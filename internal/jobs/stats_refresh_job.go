package jobs

import (
	"context"
	"log/slog"
	"time"

	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// StatsRefreshJob keeps the dashboard counters warm. It recomputes the
// snapshot on a fixed schedule and writes it to the cache, so dashboard
// loads between runs never touch the database.
type StatsRefreshJob struct {
	handler  queries.GetDashboardStatsQueryHandler
	cache    ports.StatsCache
	ttl      time.Duration
	interval time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStatsRefreshJob creates a job that refreshes the dashboard snapshot
// every interval. Snapshots are cached with the given time to live; the ttl
// should exceed the interval so the cache never goes cold between runs.
func NewStatsRefreshJob(
	handler queries.GetDashboardStatsQueryHandler,
	cache ports.StatsCache,
	interval time.Duration,
	ttl time.Duration,
	logger *slog.Logger,
) *StatsRefreshJob {
	return &StatsRefreshJob{
		handler:  handler,
		cache:    cache,
		ttl:      ttl,
		interval: interval,
		cron: cron.New(
			// A slow aggregation must not stack refreshes behind itself.
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger: logger.With("component", "stats_refresh_job"),
	}
}

// Start begins the periodic refresh.
func (j *StatsRefreshJob) Start() error {
	_, err := j.cron.AddFunc(everyExpr(j.interval), func() {
		ctx := context.Background()

		stats, err := j.handler.Compute(ctx)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stats refresh failed", "error", err)
			return
		}

		if err := j.cache.Put(ctx, stats, j.ttl); err != nil {
			j.logger.ErrorContext(ctx, "Stats cache write failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stats refresh job started", "interval", j.interval.String())
	return nil
}

// Stop stops the refresh job. A run already in flight finishes.
func (j *StatsRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stats refresh job stopped")
}

// everyExpr renders an interval as a cron @every expression with seconds
// resolution. Sub-second intervals round up to one second.
func everyExpr(interval time.Duration) string {
	if interval < time.Second {
		interval = time.Second
	}
	return "@every " + interval.Truncate(time.Second).String()
}
