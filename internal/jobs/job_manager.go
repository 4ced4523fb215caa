package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	statsRefreshJob *StatsRefreshJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the stats handler and cache as dependencies to wire up the refresh.
func NewJobManager(
	statsHandler queries.GetDashboardStatsQueryHandler,
	statsCache ports.StatsCache,
	refreshInterval time.Duration,
	snapshotTTL time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		statsRefreshJob: NewStatsRefreshJob(statsHandler, statsCache, refreshInterval, snapshotTTL, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.statsRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start stats refresh job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.statsRefreshJob.Stop()
}
