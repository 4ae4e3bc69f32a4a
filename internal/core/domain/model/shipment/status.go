package shipment

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
// It implements a state machine with defined transitions so shipments
// advance through the delivery workflow in order.
//
// State transitions:
//
//	Preparing ──> Shipped ──> InTransit ──> OutForDelivery ──> Delivered
//	    │            │            │               │
//	    └────────────┴────────────┴───────────────┴──> Exception
//
// Forward movement may skip intermediate states (carriers frequently miss
// scans) and a state may repeat when only the location changed. Delivered
// and Exception are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Preparing is the initial status: the package is being prepared at
	// the fulfillment center.
	Preparing

	// Shipped indicates the carrier has accepted the package.
	Shipped

	// InTransit indicates the package is moving through the carrier network.
	InTransit

	// OutForDelivery indicates the package is on the final delivery vehicle.
	OutForDelivery

	// Delivered indicates successful delivery. Terminal.
	Delivered

	// Exception indicates the shipment needs attention (failed delivery
	// attempt, damage, loss, missed estimate). Terminal; there is no
	// automatic recovery.
	Exception
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Preparing:      "preparing",
		Shipped:        "shipped",
		InTransit:      "in_transit",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Exception:      "exception",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Preparing:      "preparing",
		Shipped:        "shipped",
		InTransit:      "in_transit",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Exception:      "exception",
	}
}

// StatusFromString parses the wire representation of a status
// ("preparing", "shipped", "in_transit", "out_for_delivery", "delivered",
// "exception"). Returns an error for unrecognized values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid shipment status", s))
}

// Validate checks if the Status value is valid.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status.
// Returns "unknown" for invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status ends the shipment lifecycle.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Exception
}

// TransitionTo validates the move from the current status to next and
// returns the resulting status.
//
// Rules:
//   - Terminal statuses reject every transition
//   - Exception is reachable from any non-terminal status
//   - Otherwise movement must be forward along the lifecycle; a repeated
//     status is allowed so carriers can report location-only updates
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if err := next.Validate(); err != nil {
		return 0, err
	}

	if s.IsTerminal() {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is terminal and cannot transition to %s", s, next))
	}

	if next == Exception {
		return Exception, nil
	}

	if next < s {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("cannot move backwards from %s to %s", s, next))
	}

	return next, nil
}
