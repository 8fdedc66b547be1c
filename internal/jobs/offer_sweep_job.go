package jobs

import (
	"context"
	"log/slog"

	"tanker/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OfferSweepJob periodically deletes expired, non-rejected driver offers.
// Runs every fifteen seconds. Rejected rows are never touched: they carry the
// no-re-offer history suppliers rely on. Order deadlines are not swept here
// either, those stay lazily enforced at the next transition.
type OfferSweepJob struct {
	uowFactory commands.OfferUoWFactory
	clock      commands.Clock
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewOfferSweepJob creates the hygiene job for expired driver offers.
func NewOfferSweepJob(
	uowFactory commands.OfferUoWFactory,
	clock commands.Clock,
	logger *slog.Logger,
) *OfferSweepJob {
	return &OfferSweepJob{
		uowFactory: uowFactory,
		clock:      clock,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "offer_sweep_job"),
	}
}

// Start begins the sweep to run every fifteen seconds.
func (j *OfferSweepJob) Start() error {
	_, err := j.cron.AddFunc("*/15 * * * * *", func() {
		ctx := context.Background()

		swept, sweepErr := j.sweep(ctx)
		if sweepErr != nil {
			j.logger.ErrorContext(ctx, "Offer sweep failed", "error", sweepErr)
			return
		}

		if swept > 0 {
			j.logger.InfoContext(ctx, "Swept expired driver offers", "count", swept)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Offer sweep job started (running every 15 seconds)")
	return nil
}

// Stop stops the sweep job.
func (j *OfferSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Offer sweep job stopped")
}

func (j *OfferSweepJob) sweep(ctx context.Context) (int64, error) {
	uow := j.uowFactory.Create()

	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	swept, err := uow.OfferRepository().DeleteExpiredUnrejected(ctx, j.clock())
	if err != nil {
		return 0, err
	}

	if err := uow.Commit(ctx); err != nil {
		return 0, err
	}

	return swept, nil
}
