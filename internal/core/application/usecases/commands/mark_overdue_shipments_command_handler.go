package commands

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/shipment"
)

// MarkOverdueShipmentsCommandHandler moves long-overdue shipments into
// exception status. It is invoked periodically by the overdue sweep job.
type MarkOverdueShipmentsCommandHandler struct {
	uowFactory ShipmentUoWFactory
	logger     *slog.Logger
	now        func() time.Time
}

// NewMarkOverdueShipmentsCommandHandler creates a handler for the overdue sweep.
func NewMarkOverdueShipmentsCommandHandler(
	uowFactory ShipmentUoWFactory,
	logger *slog.Logger,
) MarkOverdueShipmentsCommandHandler {
	return MarkOverdueShipmentsCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
		now:        time.Now,
	}
}

// Handle flags every undelivered shipment whose estimated delivery plus the
// grace period is in the past. Returns the number of shipments flagged.
// A failure on one shipment is logged and the sweep continues.
func (h *MarkOverdueShipmentsCommandHandler) Handle(
	ctx context.Context,
	cmd MarkOverdueShipmentsCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	shipments, err := shipmentRepo.GetAllUndelivered(ctx)
	if err != nil {
		return 0, err
	}

	now := h.now()
	flagged := 0
	for _, shp := range shipments {
		if !now.After(shp.EstimatedDelivery().Add(cmd.GracePeriod())) {
			continue
		}

		if err := shp.TransitionTo(
			shipment.Exception,
			shp.CurrentLocation(),
			"Shipment is overdue and requires attention",
			now,
		); err != nil {
			h.logger.WarnContext(ctx, "failed to flag overdue shipment",
				slog.String("shipmentID", shp.ID().String()),
				slog.Any("error", err),
			)
			continue
		}

		if err := shipmentRepo.Update(ctx, shp); err != nil {
			h.logger.WarnContext(ctx, "failed to persist overdue shipment",
				slog.String("shipmentID", shp.ID().String()),
				slog.Any("error", err),
			)
			continue
		}

		flagged++
	}

	if err := uow.Commit(ctx); err != nil {
		return 0, err
	}

	return flagged, nil
}
