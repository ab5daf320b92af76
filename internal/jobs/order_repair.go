// Package jobs runs periodic maintenance of the catalog
package jobs

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// defaultRunTimeout bounds a single repair run
const defaultRunTimeout = 2 * time.Minute

// OrderRepairer renumbers every sibling scope of the catalog
type OrderRepairer interface {
	// Method RepairAll renumbers every scope so that positions are 1..N
	//
	// Returns the number of items whose position changed and an error if any.
	RepairAll(ctx context.Context) (int, error)
}

// OrderRepairJob periodically closes gaps and duplicates in order positions
type OrderRepairJob struct {
	repairer   OrderRepairer
	logger     *zap.Logger
	runTimeout time.Duration

	mu   sync.Mutex
	cron *cron.Cron
}

// NewOrderRepairJob creates a new order repair job.
// A non-positive "runTimeout" falls back to two minutes.
func NewOrderRepairJob(repairer OrderRepairer, runTimeout time.Duration, logger *zap.Logger) *OrderRepairJob {
	if runTimeout <= 0 {
		runTimeout = defaultRunTimeout
	}
	return &OrderRepairJob{
		repairer:   repairer,
		logger:     logger,
		runTimeout: runTimeout,
	}
}

// Start schedules the job with a standard cron expression or a descriptor such as "@every 1h".
// Overlapping runs are skipped.
func (j *OrderRepairJob) Start(schedule string) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.cron != nil {
		return fmt.Errorf("order repair job is already started")
	}

	cronLogger := cronLogger{logger: j.logger.Sugar()}
	c := cron.New(cron.WithChain(
		cron.Recover(cronLogger),
		cron.SkipIfStillRunning(cronLogger),
	))
	if _, err := c.AddFunc(schedule, func() { j.Run(context.Background()) }); err != nil {
		return fmt.Errorf("invalid order repair schedule %q: %w", schedule, err)
	}

	c.Start()
	j.cron = c
	j.logger.Info("order repair job started", zap.String("schedule", schedule))
	return nil
}

// Stop unschedules the job and waits for a running repair to finish or "ctx" to expire
func (j *OrderRepairJob) Stop(ctx context.Context) {
	j.mu.Lock()
	c := j.cron
	j.cron = nil
	j.mu.Unlock()

	if c == nil {
		return
	}

	select {
	case <-c.Stop().Done():
		j.logger.Info("order repair job stopped")
	case <-ctx.Done():
		j.logger.Warn("order repair job did not stop in time", zap.Error(ctx.Err()))
	}
}

// Run performs a single repair pass
func (j *OrderRepairJob) Run(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, j.runTimeout)
	defer cancel()

	start := time.Now()
	repaired, err := j.repairer.RepairAll(ctx)
	if err != nil {
		j.logger.Error("order repair failed", zap.Error(err))
		return
	}

	if repaired > 0 {
		j.logger.Info("order repair finished",
			zap.Int("repaired", repaired),
			zap.Duration("duration", time.Since(start)),
		)
		return
	}
	j.logger.Debug("order repair found nothing to fix", zap.Duration("duration", time.Since(start)))
}

// cronLogger adapts zap to the cron.Logger interface
type cronLogger struct {
	logger *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Errorw(msg, append(keysAndValues, "error", err)...)
}
