package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand represents a request to create a shipment from an
// accepted fulfillment plan.
//
// Example:
//
//	cmd, err := NewCreateShipmentCommand(planID)
//	if err != nil {
//	    return fmt.Errorf("invalid plan id: %w", err)
//	}
//
//	shp, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create shipment: %w", err)
//	}
//	fmt.Printf("Shipment %s tracking %s", shp.ID(), shp.TrackingNumber())
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	planID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to open a shipment for the given plan.
func NewCreateShipmentCommand(planID kernel.UUID) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setPlanID(planID); err != nil {
		return CreateShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateShipmentCommandIsNotConstructed if validation fails.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// PlanID returns the identifier of the plan the shipment is created from.
func (c CreateShipmentCommand) PlanID() kernel.UUID {
	return c.planID
}

func (c *CreateShipmentCommand) setPlanID(planID kernel.UUID) error {
	if err := planID.Validate(); err != nil {
		return err
	}

	c.planID = planID
	return nil
}
