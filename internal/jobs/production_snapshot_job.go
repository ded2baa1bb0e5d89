package jobs

import (
	"context"
	"log/slog"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/application/usecases/queries"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// ProductionSnapshotJob periodically logs a snapshot of plant activity:
// how many orders are running, paused, and done, and the volume still open.
// The job is read-only; production advances only through the HTTP API.
type ProductionSnapshotJob struct {
	handler queries.GetAllOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewProductionSnapshotJob creates a job that samples the order list every
// thirty seconds through the read side.
func NewProductionSnapshotJob(handler queries.GetAllOrdersQueryHandler, logger *slog.Logger) *ProductionSnapshotJob {
	return &ProductionSnapshotJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "production_snapshot_job"),
	}
}

// Start begins the snapshot job.
func (j *ProductionSnapshotJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()

		orders, err := j.handler.Handle(ctx, queries.NewGetAllOrdersQuery(0))
		if err != nil {
			j.logger.ErrorContext(ctx, "Production snapshot failed", "error", err)
			return
		}

		var running, paused, done int
		var openVolume float64
		for _, o := range orders {
			switch o.Status {
			case order.Running.String():
				running++
			case order.Paused.String():
				paused++
			case order.Done.String():
				done++
			}
			if o.Status != order.Done.String() {
				openVolume += o.TotalVolume
			}
		}

		j.logger.InfoContext(ctx, "Production snapshot",
			"orders", len(orders),
			"running", running,
			"paused", paused,
			"done", done,
			"open_volume_m3", openVolume,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Production snapshot job started (every 30 seconds)")
	return nil
}

// Stop stops the snapshot job.
func (j *ProductionSnapshotJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Production snapshot job stopped")
}
