package services

import (
	"fmt"
	"math"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/core/domain/model/kernel"
)

// Carbon footprint model: packaging contributes up to half a kilogram of
// CO2 scaled by how unsustainable it is; non-carbon-neutral shipping adds
// a flat 2.5 kg.
const (
	packagingFootprintScale = 0.5
	shippingFootprintKg     = 2.5
)

// PlanAssembler combines the optimizer's selection with derived metrics
// (total cost, delivery date, carbon footprint) and human-readable
// fulfillment instructions into an immutable Plan.
//
// Assembly performs no I/O; its only impurity is a wall-clock read for the
// delivery date, which is injectable for tests.
type PlanAssembler struct {
	now func() time.Time
}

// NewPlanAssembler creates a PlanAssembler using the system clock.
func NewPlanAssembler() PlanAssembler {
	return PlanAssembler{now: time.Now}
}

// NewPlanAssemblerWithClock creates a PlanAssembler with an injected clock.
func NewPlanAssemblerWithClock(now func() time.Time) PlanAssembler {
	return PlanAssembler{now: now}
}

// Assemble builds the Plan for the optimizer's selection. The runner-up
// alternatives are positions 2-4 of each pre-sorted catalog.
func (a PlanAssembler) Assemble(
	request *fulfillment.Request,
	selection Selection,
	packagingOptions []fulfillment.PackagingOption,
	shippingOptions []fulfillment.ShippingOption,
) (*fulfillment.Plan, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	estimatedDelivery := a.now().AddDate(0, 0, selection.Shipping.EstimatedDays)

	return fulfillment.NewPlan(
		kernel.NewUUID(),
		request.OrderID(),
		selection.Packaging,
		selection.Shipping,
		alternatives(packagingOptions),
		alternatives(shippingOptions),
		estimatedDelivery,
		carbonFootprint(selection.Packaging, selection.Shipping),
		selection.Confidence,
		selection.Score,
		instructions(selection.Packaging, selection.Shipping),
	)
}

// alternatives returns positions 2-4 of a pre-sorted catalog.
func alternatives[T any](options []T) []T {
	if len(options) <= 1 {
		return nil
	}
	end := len(options)
	if end > 1+fulfillment.MaxAlternatives {
		end = 1 + fulfillment.MaxAlternatives
	}
	return options[1:end]
}

func carbonFootprint(packaging fulfillment.PackagingOption, shipping fulfillment.ShippingOption) float64 {
	footprint := (1 - packaging.Sustainability) * packagingFootprintScale
	if !shipping.IsCarbonNeutral() {
		footprint += shippingFootprintKg
	}
	return round2(footprint)
}

// instructions renders the ordered fulfillment steps for warehouse staff.
func instructions(packaging fulfillment.PackagingOption, shipping fulfillment.ShippingOption) []string {
	steps := []string{
		fmt.Sprintf("Use %s packaging with %s protection", packaging.Material, packaging.Protection),
	}

	if len(packaging.Customizations) > 0 {
		steps = append(steps, fmt.Sprintf("Include: %s", strings.Join(packaging.Customizations, ", ")))
	}

	steps = append(steps, fmt.Sprintf("Ship via %s %s", shipping.Carrier, shipping.Service))

	if shipping.SignatureRequired {
		steps = append(steps, "Signature required upon delivery")
	}
	if shipping.InsuranceIncluded {
		steps = append(steps, "Package includes insurance coverage")
	}

	return steps
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
