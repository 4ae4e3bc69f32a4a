package commands

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
)

// CreateShipmentCommandHandler creates shipment aggregates from persisted plans.
// The new shipment starts in "preparing" status with a carrier-prefixed
// tracking number and a seeded history event.
//
// Like plan persistence, shipment persistence is best-effort: a storage
// failure is logged and the in-memory shipment is still returned.
type CreateShipmentCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
	now        func() time.Time
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation.
// Requires a cross-aggregate UoWFactory since it reads plans and writes shipments.
func NewCreateShipmentCommandHandler(uowFactory UoWFactory, logger *slog.Logger) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
		now:        time.Now,
	}
}

// Handle processes the shipment creation command.
// Loads the referenced plan, derives the shipment from its selected shipping
// option, and persists it. Returns the shipment even when persistence fails.
func (h *CreateShipmentCommandHandler) Handle(
	ctx context.Context,
	cmd CreateShipmentCommand,
) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	plan, err := uow.PlanRepository().Get(ctx, cmd.PlanID())
	if err != nil {
		return nil, err
	}

	shp, err := shipment.NewShipment(kernel.NewUUID(), plan, h.now())
	if err != nil {
		return nil, err
	}

	if err := uow.ShipmentRepository().Add(ctx, shp); err != nil {
		h.logger.WarnContext(ctx, "shipment persistence failed, returning unpersisted shipment",
			slog.String("shipmentID", shp.ID().String()),
			slog.String("planID", plan.ID().String()),
			slog.Any("error", err),
		)
		return shp, nil
	}

	if err := uow.Commit(ctx); err != nil {
		h.logger.WarnContext(ctx, "shipment persistence failed, returning unpersisted shipment",
			slog.String("shipmentID", shp.ID().String()),
			slog.String("planID", plan.ID().String()),
			slog.Any("error", err),
		)
	}

	return shp, nil
}
