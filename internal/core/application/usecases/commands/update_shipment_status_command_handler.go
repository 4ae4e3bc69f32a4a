package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/shipment"
)

// UpdateShipmentStatusCommandHandler applies carrier status updates to shipments.
// The shipment row is locked for the duration of the transaction so
// concurrent updates to the same shipment apply strictly one at a time.
type UpdateShipmentStatusCommandHandler struct {
	uowFactory ShipmentUoWFactory
	now        func() time.Time
}

// NewUpdateShipmentStatusCommandHandler creates a handler for shipment status updates.
func NewUpdateShipmentStatusCommandHandler(uowFactory ShipmentUoWFactory) UpdateShipmentStatusCommandHandler {
	return UpdateShipmentStatusCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the status update command and returns the updated shipment.
// Invalid transitions and terminal shipments reject the update; the stored
// state is unchanged on any error.
func (h *UpdateShipmentStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateShipmentStatusCommand,
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

	shipmentRepo := uow.ShipmentRepository()
	shp, err := shipmentRepo.GetForUpdate(ctx, cmd.ShipmentID())
	if err != nil {
		return nil, err
	}

	if err := shp.TransitionTo(cmd.Status(), cmd.Location(), cmd.Description(), h.now()); err != nil {
		return nil, err
	}

	if cmd.FailedAttempt() {
		if err := shp.RecordDeliveryAttempt(); err != nil {
			return nil, err
		}
	}

	if err := shipmentRepo.Update(ctx, shp); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return shp, nil
}
