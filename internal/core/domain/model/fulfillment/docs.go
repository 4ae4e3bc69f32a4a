// Package fulfillment provides the domain model for fulfillment planning:
// the inbound Request aggregate with its Items, destination Address, and
// customer Preferences, the candidate PackagingOption and ShippingOption
// value objects, and the resulting Plan aggregate.
//
// Key business rules:
//   - A Request must contain at least one valid item and a valid destination
//   - Candidate options are deterministic functions of the request plus
//     static distance/rate tables and are never persisted on their own
//   - A Plan's total cost always equals its packaging cost plus shipping
//     cost, its confidence lies in [0.5, 0.98], and it carries at most
//     three runner-up options per axis
//   - Plans are immutable after creation; accepting one creates a Shipment
//
// The package follows Domain-Driven Design principles, providing rich
// domain behavior, encapsulation, and validation to ensure business rules
// are enforced.
package fulfillment
