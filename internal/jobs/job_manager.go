package jobs

import (
	"fmt"
	"log/slog"

	"tanker/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	offerSweepJob *OfferSweepJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	offerUoWFactory commands.OfferUoWFactory,
	clock commands.Clock,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		offerSweepJob: NewOfferSweepJob(offerUoWFactory, clock, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.offerSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start offer sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.offerSweepJob.Stop()
}
