package liquidation

import (
	"context"

	"lending/core"
	"lending/worker"

	"github.com/fox-one/pkg/logger"
	"github.com/robfig/cron/v3"
)

// Worker periodic liquidation sweep, run as the owner identity.
type Worker struct {
	worker.BaseJob
	engine  core.LendingService
	systems core.SystemStore
}

// New new liquidation worker
func New(engine core.LendingService, systems core.SystemStore, spec string) *Worker {
	job := Worker{
		engine:  engine,
		systems: systems,
	}

	job.Cron = cron.New()
	job.Cron.AddFunc(spec, func() {
		job.Tick(context.Background())
	})
	job.OnWork = job.onWork

	return &job
}

func (w *Worker) onWork(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("worker", "liquidation")

	system, err := w.systems.Read(ctx)
	if err != nil {
		if err != core.ErrNotInitialized {
			log.WithError(err).Errorln("read system failed")
		}
		return err
	}

	if err := w.engine.CheckLiquidations(ctx, system.OwnerID); err != nil {
		log.WithError(err).Errorln("check liquidations failed")
		return err
	}

	return nil
}
