package jobs

import (
	"fmt"
	"log/slog"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/application/usecases/queries"
)

// JobManager coordinates the application's scheduled jobs.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	productionSnapshotJob *ProductionSnapshotJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		productionSnapshotJob: NewProductionSnapshotJob(getAllOrdersHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.productionSnapshotJob.Start(); err != nil {
		return fmt.Errorf("failed to start production snapshot job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.productionSnapshotJob.Stop()
}
