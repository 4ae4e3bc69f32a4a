package commands

import (
	"errors"
	"time"

	"fulfillment/internal/pkg/guard"
)

var (
	ErrMarkOverdueShipmentsCommandIsNotConstructed = errors.New(
		"MarkOverdueShipmentsCommand must be created via NewMarkOverdueShipmentsCommand constructor",
	)
	ErrGracePeriodIsInvalid = errors.New("grace period must not be negative")
)

// MarkOverdueShipmentsCommand represents a sweep of shipments whose
// estimated delivery date passed more than a grace period ago.
type MarkOverdueShipmentsCommand struct { //nolint:recvcheck //using for validation
	gracePeriod time.Duration

	guard guard.ConstructorGuard
}

// NewMarkOverdueShipmentsCommand creates a command to flag overdue shipments.
// The grace period is how long past the estimated delivery a shipment may
// run before it is marked as an exception.
func NewMarkOverdueShipmentsCommand(gracePeriod time.Duration) (MarkOverdueShipmentsCommand, error) {
	cmd := MarkOverdueShipmentsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setGracePeriod(gracePeriod); err != nil {
		return MarkOverdueShipmentsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrMarkOverdueShipmentsCommandIsNotConstructed if validation fails.
func (c MarkOverdueShipmentsCommand) Validate() error {
	return c.guard.Validate(ErrMarkOverdueShipmentsCommandIsNotConstructed)
}

// GracePeriod returns the allowance past the estimated delivery date.
func (c MarkOverdueShipmentsCommand) GracePeriod() time.Duration {
	return c.gracePeriod
}

func (c *MarkOverdueShipmentsCommand) setGracePeriod(gracePeriod time.Duration) error {
	if gracePeriod < 0 {
		return ErrGracePeriodIsInvalid
	}

	c.gracePeriod = gracePeriod
	return nil
}
