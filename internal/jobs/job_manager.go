package jobs

import (
	"fmt"
	"time"

	"shiptrack/internal/core/application/usecases/commands"

	"go.uber.org/zap"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderArchivalJob *OrderArchivalJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	archiveHandler commands.ArchiveStaleOrdersCommandHandler,
	archivalSchedule string,
	archiveOlderThan time.Duration,
	logger *zap.Logger,
) *JobManager {
	return &JobManager{
		orderArchivalJob: NewOrderArchivalJob(
			archiveHandler, archivalSchedule, archiveOlderThan, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderArchivalJob.Start(); err != nil {
		return fmt.Errorf("failed to start order archival job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderArchivalJob.Stop()
}
