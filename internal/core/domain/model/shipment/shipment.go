package shipment

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
	// created through the NewShipment or RestoreShipment factory methods.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")
)

// Shipment is the stateful tracked object created once a fulfillment Plan
// is accepted. It is the aggregate root for the delivery lifecycle and owns
// its event histories for its entire lifetime.
//
// Invariants:
//   - A fresh shipment starts in Preparing with exactly one tracking event
//   - The tracking and notification histories are append-only
//   - Status moves only along the transitions defined by Status
//   - Updates for a single shipment must not interleave; callers serialize
//     them (the persistence adapter takes a row lock per update)
type Shipment struct {
	id                kernel.UUID
	orderID           kernel.UUID
	trackingNumber    string
	carrier           string
	status            Status
	currentLocation   string
	estimatedDelivery time.Time
	actualDelivery    *time.Time
	events            []TrackingEvent
	deliveryAttempts  int
	notifications     []NotificationEvent

	isConstructed bool
}

// NewShipment creates a Shipment from an accepted fulfillment Plan.
// The shipment starts in Preparing at the fulfillment center with a freshly
// generated tracking number and a single seeded tracking event.
func NewShipment(id kernel.UUID, plan *fulfillment.Plan, now time.Time) (*Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	carrier := plan.RecommendedShipping().Carrier
	return &Shipment{
		id:                id,
		orderID:           plan.OrderID(),
		trackingNumber:    GenerateTrackingNumber(carrier),
		carrier:           carrier,
		status:            Preparing,
		estimatedDelivery: plan.EstimatedDelivery(),
		events: []TrackingEvent{{
			Timestamp:   now,
			Location:    "Fulfillment Center",
			Status:      Preparing,
			Description: "Package is being prepared for shipment",
		}},
		isConstructed: true,
	}, nil
}

// RestoreShipment reconstructs a Shipment from persistence.
// All invariants except construction provenance are assumed to have been
// enforced when the shipment was first created.
func RestoreShipment(
	id kernel.UUID,
	orderID kernel.UUID,
	trackingNumber string,
	carrier string,
	status Status,
	currentLocation string,
	estimatedDelivery time.Time,
	actualDelivery *time.Time,
	events []TrackingEvent,
	deliveryAttempts int,
	notifications []NotificationEvent,
) (*Shipment, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	if trackingNumber == "" {
		return nil, errs.NewValueIsRequiredError("trackingNumber")
	}
	if carrier == "" {
		return nil, errs.NewValueIsRequiredError("carrier")
	}
	if len(events) == 0 {
		return nil, errs.NewValueIsRequiredError("events")
	}
	if deliveryAttempts < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("deliveryAttempts",
			fmt.Errorf("%d is negative", deliveryAttempts))
	}

	return &Shipment{
		id:                id,
		orderID:           orderID,
		trackingNumber:    trackingNumber,
		carrier:           carrier,
		status:            status,
		currentLocation:   currentLocation,
		estimatedDelivery: estimatedDelivery,
		actualDelivery:    actualDelivery,
		events:            append([]TrackingEvent(nil), events...),
		deliveryAttempts:  deliveryAttempts,
		notifications:     append([]NotificationEvent(nil), notifications...),
		isConstructed:     true,
	}, nil
}

// Validate ensures the Shipment was properly constructed through a factory method.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// IsEqual compares two shipments by their unique identifiers.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// OrderID returns the identifier of the fulfilled order.
func (s *Shipment) OrderID() kernel.UUID {
	return s.orderID
}

// TrackingNumber returns the carrier tracking number.
func (s *Shipment) TrackingNumber() string {
	return s.trackingNumber
}

// Carrier returns the carrier handling the shipment.
func (s *Shipment) Carrier() string {
	return s.carrier
}

// Status returns the current lifecycle status.
func (s *Shipment) Status() Status {
	return s.status
}

// CurrentLocation returns the last reported location, if any.
func (s *Shipment) CurrentLocation() string {
	return s.currentLocation
}

// EstimatedDelivery returns the projected delivery timestamp from the plan.
func (s *Shipment) EstimatedDelivery() time.Time {
	return s.estimatedDelivery
}

// ActualDelivery returns the delivery timestamp, or nil if not delivered.
func (s *Shipment) ActualDelivery() *time.Time {
	return s.actualDelivery
}

// Events returns a copy of the append-only tracking event history.
func (s *Shipment) Events() []TrackingEvent {
	return append([]TrackingEvent(nil), s.events...)
}

// DeliveryAttempts returns the number of failed delivery attempts.
func (s *Shipment) DeliveryAttempts() int {
	return s.deliveryAttempts
}

// Notifications returns a copy of the customer notification history.
func (s *Shipment) Notifications() []NotificationEvent {
	return append([]NotificationEvent(nil), s.notifications...)
}

// TransitionTo applies an external status update to the shipment.
// A valid transition appends exactly one tracking event, moves the current
// status, and updates the location when one is supplied. Transitioning to
// Delivered records the delivery timestamp; reaching Delivered or Exception
// also appends a customer notification.
//
// An empty description is replaced with a generic status message.
func (s *Shipment) TransitionTo(next Status, location string, description string, now time.Time) error {
	if err := s.Validate(); err != nil {
		return err
	}

	newStatus, err := s.status.TransitionTo(next)
	if err != nil {
		return err
	}

	if description == "" {
		description = fmt.Sprintf("Shipment status changed to %s", newStatus)
	}

	s.status = newStatus
	if location != "" {
		s.currentLocation = location
	}
	s.events = append(s.events, TrackingEvent{
		Timestamp:   now,
		Location:    location,
		Status:      newStatus,
		Description: description,
	})

	switch newStatus {
	case Delivered:
		delivered := now
		s.actualDelivery = &delivered
		s.notify(fmt.Sprintf("Your package %s has been delivered", s.trackingNumber), now)
	case Exception:
		s.notify(fmt.Sprintf("Your package %s needs attention: %s", s.trackingNumber, description), now)
	}

	return nil
}

// RecordDeliveryAttempt increments the failed delivery attempt counter.
// Whether an exception update counts as a failed attempt is a policy
// decision made by the calling context, not inside the tracker.
func (s *Shipment) RecordDeliveryAttempt() error {
	if err := s.Validate(); err != nil {
		return err
	}
	s.deliveryAttempts++
	return nil
}

// RecordNotification appends a customer notification with an explicit
// channel and delivery outcome, for use by notification collaborators
// reporting back.
func (s *Shipment) RecordNotification(
	channel NotificationChannel,
	message string,
	status NotificationStatus,
	now time.Time,
) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if message == "" {
		return errs.NewValueIsRequiredError("message")
	}

	s.notifications = append(s.notifications, NotificationEvent{
		Timestamp: now,
		Channel:   channel,
		Message:   message,
		Status:    status,
	})
	return nil
}

func (s *Shipment) notify(message string, now time.Time) {
	s.notifications = append(s.notifications, NotificationEvent{
		Timestamp: now,
		Channel:   NotificationEmail,
		Message:   message,
		Status:    NotificationSent,
	})
}
