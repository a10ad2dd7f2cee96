package worker

import (
	"context"

	"github.com/robfig/cron/v3"
)

// Worker a background job
type Worker interface {
	Run(ctx context.Context) error
}

type OnWork func(ctx context.Context) error

// BaseJob cron-driven job skeleton. Run blocks until ctx is done;
// overlapping ticks are skipped, not queued.
type BaseJob struct {
	Cron      *cron.Cron
	OnWork    OnWork
	isRunning bool
}

func (job *BaseJob) Run(ctx context.Context) error {
	job.Cron.Start()
	defer job.Cron.Stop()

	<-ctx.Done()
	return ctx.Err()
}

// Tick one sweep, guarded against reentry
func (job *BaseJob) Tick(ctx context.Context) {
	if job.isRunning {
		return
	}

	job.isRunning = true
	defer func() { job.isRunning = false }()

	_ = job.OnWork(ctx)
}
