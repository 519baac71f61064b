package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultRefreshSchedule reloads the catalog every 15 minutes.
const DefaultRefreshSchedule = "@every 15m"

const refreshTimeout = 30 * time.Second

// PriceCatalogReloader refreshes the price catalog cache from its source.
type PriceCatalogReloader interface {
	Reload(ctx context.Context) error
}

// PricelistRefreshJob periodically reloads the in-memory price catalog so
// lookups keep serving current prices without restarting the service.
type PricelistRefreshJob struct {
	reloader PriceCatalogReloader
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewPricelistRefreshJob creates a job that reloads the price catalog on
// the given cron schedule. An empty schedule falls back to
// DefaultRefreshSchedule.
func NewPricelistRefreshJob(reloader PriceCatalogReloader, schedule string, logger *slog.Logger) *PricelistRefreshJob {
	if schedule == "" {
		schedule = DefaultRefreshSchedule
	}

	return &PricelistRefreshJob{
		reloader: reloader,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "pricelist_refresh_job"),
	}
}

// Start begins the periodic catalog refresh. A failed reload keeps the
// previous cache contents, so errors are logged and the job keeps running.
func (j *PricelistRefreshJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()

		if err := j.reloader.Reload(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Price list refresh failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Price list refresh job started", "schedule", j.schedule)
	return nil
}

// Stop stops the refresh job.
func (j *PricelistRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Price list refresh job stopped")
}
