// Package services contains the domain services of the fulfillment
// planning engine: candidate generation (PackagingCatalog,
// ShippingCatalog), constrained multi-criteria selection (Optimizer), and
// plan construction (PlanAssembler).
//
// All services are stateless. Catalog generation and scoring read only the
// request argument and the injected static tables, so multiple requests
// can be planned fully in parallel without locking. The optimizer's search
// is deliberately bounded to the top three candidates per axis to keep
// latency predictable.
package services
