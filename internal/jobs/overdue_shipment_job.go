package jobs

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

// overdueSweepSchedule runs the sweep at the top of every fifth minute.
const overdueSweepSchedule = "0 */5 * * * *"

// OverdueShipmentJob periodically sweeps undelivered shipments whose
// estimated delivery date passed and flags them as exceptions.
type OverdueShipmentJob struct {
	handler     commands.MarkOverdueShipmentsCommandHandler
	gracePeriod time.Duration
	cron        *cron.Cron
	logger      *slog.Logger
}

// NewOverdueShipmentJob creates a job that flags overdue shipments.
// The grace period is how long past the delivery estimate a shipment may
// run before the sweep marks it as an exception.
func NewOverdueShipmentJob(
	handler commands.MarkOverdueShipmentsCommandHandler,
	gracePeriod time.Duration,
	logger *slog.Logger,
) *OverdueShipmentJob {
	return &OverdueShipmentJob{
		handler:     handler,
		gracePeriod: gracePeriod,
		cron:        cron.New(cron.WithSeconds()),
		logger:      logger.With("component", "overdue_shipment_job"),
	}
}

// Start begins the overdue sweep on its five minute schedule.
func (j *OverdueShipmentJob) Start() error {
	_, err := j.cron.AddFunc(overdueSweepSchedule, func() {
		ctx := context.Background()

		cmd, err := commands.NewMarkOverdueShipmentsCommand(j.gracePeriod)
		if err != nil {
			j.logger.ErrorContext(ctx, "Overdue shipment job misconfigured", "error", err)
			return
		}

		flagged, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Overdue shipment job failed", "error", err)
			return
		}

		if flagged > 0 {
			metrics.OverdueShipmentsTotal.Add(float64(flagged))
			j.logger.InfoContext(ctx, "Flagged overdue shipments", "count", flagged)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue shipment job started (running every 5 minutes)")
	return nil
}

// Stop stops the overdue sweep.
func (j *OverdueShipmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue shipment job stopped")
}
