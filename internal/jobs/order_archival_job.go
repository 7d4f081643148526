package jobs

import (
	"context"
	"time"

	"shiptrack/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// OrderArchivalJob periodically sweeps stale orders into the archived status.
// Orders already delivered, completed, or archived are never touched; the
// sweep itself goes through the archival command so the history ledger stays
// consistent.
type OrderArchivalJob struct {
	handler   commands.ArchiveStaleOrdersCommandHandler
	cron      *cron.Cron
	logger    *zap.Logger
	schedule  string
	olderThan time.Duration
}

// NewOrderArchivalJob creates the archival job. The schedule is a six-field
// cron expression; olderThan is the staleness threshold. A non-positive
// threshold disables the job entirely.
func NewOrderArchivalJob(
	handler commands.ArchiveStaleOrdersCommandHandler,
	schedule string,
	olderThan time.Duration,
	logger *zap.Logger,
) *OrderArchivalJob {
	return &OrderArchivalJob{
		handler:   handler,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With(zap.String("component", "order_archival_job")),
		schedule:  schedule,
		olderThan: olderThan,
	}
}

// Start schedules the sweep. With a non-positive threshold the job logs that
// it is disabled and schedules nothing.
func (j *OrderArchivalJob) Start() error {
	if j.olderThan <= 0 {
		j.logger.Info("order archival job disabled, no staleness threshold configured")
		return nil
	}

	_, err := j.cron.AddFunc(j.schedule, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("order archival job started",
		zap.String("schedule", j.schedule),
		zap.Duration("olderThan", j.olderThan))
	return nil
}

func (j *OrderArchivalJob) run() {
	ctx := context.Background()

	cmd, err := commands.NewArchiveStaleOrdersCommand(j.olderThan)
	if err != nil {
		j.logger.Error("order archival job misconfigured", zap.Error(err))
		return
	}

	archived, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.Error("order archival sweep failed", zap.Error(err))
		return
	}

	if archived > 0 {
		j.logger.Info("archived stale orders", zap.Int("count", archived))
	}
}

// Stop stops the archival job.
func (j *OrderArchivalJob) Stop() {
	j.cron.Stop()
	j.logger.Info("order archival job stopped")
}
