package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/guard"
)

var ErrUpdateShipmentStatusCommandIsNotConstructed = errors.New(
	"UpdateShipmentStatusCommand must be created via NewUpdateShipmentStatusCommand constructor",
)

// UpdateShipmentStatusCommand represents a carrier status update for a shipment.
// Location and description are optional; failedAttempt marks the update as a
// failed delivery attempt so the attempt counter advances.
//
// Example:
//
//	cmd, err := NewUpdateShipmentStatusCommand(
//	    shipmentID, shipment.OutForDelivery, "Local Facility", "On vehicle", false)
//	if err != nil {
//	    return err
//	}
//
//	shp, err := handler.Handle(ctx, cmd)
type UpdateShipmentStatusCommand struct { //nolint:recvcheck //using for validation
	shipmentID    kernel.UUID
	status        shipment.Status
	location      string
	description   string
	failedAttempt bool

	guard guard.ConstructorGuard
}

// NewUpdateShipmentStatusCommand creates a command to apply a status update.
// Validates the shipment ID and the target status; the transition itself is
// validated by the aggregate when the command is handled.
func NewUpdateShipmentStatusCommand(
	shipmentID kernel.UUID,
	status shipment.Status,
	location string,
	description string,
	failedAttempt bool,
) (UpdateShipmentStatusCommand, error) {
	cmd := UpdateShipmentStatusCommand{
		location:      location,
		description:   description,
		failedAttempt: failedAttempt,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setStatus(status),
	); err != nil {
		return UpdateShipmentStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateShipmentStatusCommandIsNotConstructed if validation fails.
func (c UpdateShipmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentStatusCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment to update.
func (c UpdateShipmentStatusCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Status returns the target status of the update.
func (c UpdateShipmentStatusCommand) Status() shipment.Status {
	return c.status
}

// Location returns the reported location, if any.
func (c UpdateShipmentStatusCommand) Location() string {
	return c.location
}

// Description returns the carrier-supplied event description, if any.
func (c UpdateShipmentStatusCommand) Description() string {
	return c.description
}

// FailedAttempt reports whether this update records a failed delivery attempt.
func (c UpdateShipmentStatusCommand) FailedAttempt() bool {
	return c.failedAttempt
}

func (c *UpdateShipmentStatusCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *UpdateShipmentStatusCommand) setStatus(status shipment.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
