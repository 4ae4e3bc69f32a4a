package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrOptimizeFulfillmentCommandIsNotConstructed = errors.New(
		"OptimizeFulfillmentCommand must be created via NewOptimizeFulfillmentCommand constructor",
	)
	ErrRequestIsRequired = errors.New("fulfillment request is required")
)

// OptimizeFulfillmentCommand represents a request to compute an optimized
// fulfillment plan for an order.
//
// Example:
//
//	cmd, err := NewOptimizeFulfillmentCommand(request)
//	if err != nil {
//	    return fmt.Errorf("invalid fulfillment request: %w", err)
//	}
//
//	plan, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("optimization failed: %w", err)
//	}
//	fmt.Printf("Plan %s: $%.2f total", plan.ID(), plan.TotalCost())
type OptimizeFulfillmentCommand struct { //nolint:recvcheck //using for validation
	request *fulfillment.Request

	guard guard.ConstructorGuard
}

// NewOptimizeFulfillmentCommand creates a command to optimize fulfillment for an order.
// The request must be a valid, fully constructed fulfillment request.
func NewOptimizeFulfillmentCommand(request *fulfillment.Request) (OptimizeFulfillmentCommand, error) {
	cmd := OptimizeFulfillmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setRequest(request); err != nil {
		return OptimizeFulfillmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrOptimizeFulfillmentCommandIsNotConstructed if validation fails.
func (c OptimizeFulfillmentCommand) Validate() error {
	return c.guard.Validate(ErrOptimizeFulfillmentCommandIsNotConstructed)
}

// Request returns the fulfillment request to optimize.
func (c OptimizeFulfillmentCommand) Request() *fulfillment.Request {
	return c.request
}

func (c *OptimizeFulfillmentCommand) setRequest(request *fulfillment.Request) error {
	if request == nil {
		return ErrRequestIsRequired
	}
	if err := request.Validate(); err != nil {
		return err
	}

	c.request = request
	return nil
}
