package interest

import (
	"context"

	"lending/core"
	"lending/worker"

	"github.com/fox-one/pkg/logger"
	"github.com/robfig/cron/v3"
)

// Worker periodic interest recalculation
type Worker struct {
	worker.BaseJob
	engine core.LendingService
}

// New new interest worker. spec is a cron spec, e.g. "@every 24h".
func New(engine core.LendingService, spec string) *Worker {
	job := Worker{
		engine: engine,
	}

	job.Cron = cron.New()
	job.Cron.AddFunc(spec, func() {
		job.Tick(context.Background())
	})
	job.OnWork = job.onWork

	return &job
}

func (w *Worker) onWork(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("worker", "interest")

	if err := w.engine.RecalculateLoanInterest(ctx); err != nil {
		if err != core.ErrNotInitialized {
			log.WithError(err).Errorln("recalculate loan interest failed")
		}
		return err
	}

	log.Infoln("loan interest recalculated")
	return nil
}
