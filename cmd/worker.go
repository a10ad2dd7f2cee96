package cmd

import (
	"lending/worker"
	"lending/worker/interest"
	"lending/worker/liquidation"

	"github.com/drone/signal"
	"github.com/fox-one/pkg/logger"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "run lending sweep workers",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := signal.WithContext(cmd.Context())
		log := logger.FromContext(ctx)
		ctx = logger.WithContext(ctx, log)

		database := provideDatabase()
		defer database.Close()

		systemStore := provideSystemStore(database)
		engine := provideLendingService(database)

		workers := []worker.Worker{
			interest.New(engine, cfg.Worker.InterestSpec),
			liquidation.New(engine, systemStore, cfg.Worker.LiquidationSpec),
		}

		g, ctx := errgroup.WithContext(ctx)
		for _, w := range workers {
			w := w
			g.Go(func() error {
				return w.Run(ctx)
			})
		}

		if err := g.Wait(); err != nil {
			log.WithError(err).Infoln("workers stopped")
		}
	},
}

func init() {
	rootCmd.AddCommand(workerCmd)
}
