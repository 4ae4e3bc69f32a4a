// Package shipment provides the domain model for shipment tracking:
// the Shipment aggregate root, the Status state machine, and the
// append-only TrackingEvent and NotificationEvent histories.
//
// Key business rules:
//   - Shipments are created from an accepted fulfillment plan, starting in
//     "preparing" with exactly one seeded tracking event
//   - Status advances forward through preparing, shipped, in_transit,
//     out_for_delivery, delivered; exception is reachable from any
//     non-terminal state; delivered and exception are terminal
//   - Every accepted status update appends exactly one tracking event;
//     prior events are never removed or reordered
//   - Tracking numbers are generated with carrier-specific prefixes and a
//     random suffix (demonstrative, not collision-checked)
package shipment
