package fulfillment

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

const (
	// MinConfidence is the lower clamp for the optimizer's confidence estimate.
	MinConfidence = 0.5
	// MaxConfidence is the upper clamp for the optimizer's confidence estimate.
	MaxConfidence = 0.98
	// MaxAlternatives bounds the runner-up options kept per axis.
	MaxAlternatives = 3
)

// ErrPlanIsNotConstructed is returned when a Plan instance was not created
// through the NewPlan or RestorePlan factory methods.
var ErrPlanIsNotConstructed = errors.New("Plan must be created via NewPlan constructor")

// Plan is the finished fulfillment plan for one order: the recommended
// packaging and shipping pair plus derived cost, delivery, footprint, and
// confidence metadata. A Plan is immutable after creation; accepting it
// spawns a Shipment.
//
// Invariants:
//   - Total cost equals packaging cost plus shipping cost exactly
//   - Confidence lies in [MinConfidence, MaxConfidence]
//   - Optimization score lies in [0, 1]
//   - At most MaxAlternatives runner-up options per axis
type Plan struct {
	id                    kernel.UUID
	orderID               kernel.UUID
	recommendedPackaging  PackagingOption
	recommendedShipping   ShippingOption
	packagingAlternatives []PackagingOption
	shippingAlternatives  []ShippingOption
	totalCost             float64
	estimatedDelivery     time.Time
	carbonFootprint       float64
	confidence            float64
	optimizationScore     float64
	instructions          []string

	isConstructed bool
}

// NewPlan creates a validated Plan. The total cost is derived from the
// recommended pair, so the cost invariant holds by construction.
func NewPlan(
	id kernel.UUID,
	orderID kernel.UUID,
	recommendedPackaging PackagingOption,
	recommendedShipping ShippingOption,
	packagingAlternatives []PackagingOption,
	shippingAlternatives []ShippingOption,
	estimatedDelivery time.Time,
	carbonFootprint float64,
	confidence float64,
	optimizationScore float64,
	instructions []string,
) (*Plan, error) {
	plan := &Plan{
		recommendedPackaging:  recommendedPackaging,
		recommendedShipping:   recommendedShipping,
		totalCost:             recommendedPackaging.Cost + recommendedShipping.Cost,
		estimatedDelivery:     estimatedDelivery,
		carbonFootprint:       carbonFootprint,
		instructions:          append([]string(nil), instructions...),
		isConstructed:         true,
	}

	if err := errors.Join(
		plan.setID(id),
		plan.setOrderID(orderID),
		plan.setPackagingAlternatives(packagingAlternatives),
		plan.setShippingAlternatives(shippingAlternatives),
		plan.setConfidence(confidence),
		plan.setOptimizationScore(optimizationScore),
	); err != nil {
		return nil, err
	}

	return plan, nil
}

// RestorePlan reconstructs a Plan from persistence. Unlike NewPlan it takes
// the stored total cost and verifies it against the recommended pair so
// corrupted rows surface as errors instead of silently diverging.
func RestorePlan(
	id kernel.UUID,
	orderID kernel.UUID,
	recommendedPackaging PackagingOption,
	recommendedShipping ShippingOption,
	packagingAlternatives []PackagingOption,
	shippingAlternatives []ShippingOption,
	totalCost float64,
	estimatedDelivery time.Time,
	carbonFootprint float64,
	confidence float64,
	optimizationScore float64,
	instructions []string,
) (*Plan, error) {
	plan, err := NewPlan(
		id, orderID,
		recommendedPackaging, recommendedShipping,
		packagingAlternatives, shippingAlternatives,
		estimatedDelivery, carbonFootprint, confidence, optimizationScore,
		instructions,
	)
	if err != nil {
		return nil, err
	}

	if totalCost != plan.totalCost {
		return nil, errs.NewValueIsInvalidErrorWithCause("totalCost",
			fmt.Errorf("%.2f does not equal packaging %.2f + shipping %.2f",
				totalCost, recommendedPackaging.Cost, recommendedShipping.Cost))
	}

	return plan, nil
}

// Validate ensures the Plan was properly constructed through a factory method.
func (p *Plan) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPlanIsNotConstructed
	}
	return nil
}

// ID returns the plan's unique identifier.
func (p *Plan) ID() kernel.UUID {
	return p.id
}

// OrderID returns the identifier of the order this plan fulfills.
func (p *Plan) OrderID() kernel.UUID {
	return p.orderID
}

// RecommendedPackaging returns the chosen packaging option.
func (p *Plan) RecommendedPackaging() PackagingOption {
	return p.recommendedPackaging
}

// RecommendedShipping returns the chosen shipping option.
func (p *Plan) RecommendedShipping() ShippingOption {
	return p.recommendedShipping
}

// PackagingAlternatives returns a copy of the runner-up packaging options.
func (p *Plan) PackagingAlternatives() []PackagingOption {
	return append([]PackagingOption(nil), p.packagingAlternatives...)
}

// ShippingAlternatives returns a copy of the runner-up shipping options.
func (p *Plan) ShippingAlternatives() []ShippingOption {
	return append([]ShippingOption(nil), p.shippingAlternatives...)
}

// TotalCost returns the combined packaging and shipping cost in dollars.
func (p *Plan) TotalCost() float64 {
	return p.totalCost
}

// EstimatedDelivery returns the projected delivery timestamp.
func (p *Plan) EstimatedDelivery() time.Time {
	return p.estimatedDelivery
}

// CarbonFootprint returns the estimated emissions in kg CO2.
func (p *Plan) CarbonFootprint() float64 {
	return p.carbonFootprint
}

// Confidence returns the optimizer's confidence in the recommendation.
func (p *Plan) Confidence() float64 {
	return p.confidence
}

// OptimizationScore returns the winning pair's weighted score.
func (p *Plan) OptimizationScore() float64 {
	return p.optimizationScore
}

// Instructions returns a copy of the ordered fulfillment instructions.
func (p *Plan) Instructions() []string {
	return append([]string(nil), p.instructions...)
}

func (p *Plan) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Plan) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	p.orderID = orderID
	return nil
}

func (p *Plan) setPackagingAlternatives(alternatives []PackagingOption) error {
	if len(alternatives) > MaxAlternatives {
		return errs.NewValueIsOutOfRangeError("packaging alternatives", len(alternatives), 0, MaxAlternatives)
	}
	p.packagingAlternatives = append([]PackagingOption(nil), alternatives...)
	return nil
}

func (p *Plan) setShippingAlternatives(alternatives []ShippingOption) error {
	if len(alternatives) > MaxAlternatives {
		return errs.NewValueIsOutOfRangeError("shipping alternatives", len(alternatives), 0, MaxAlternatives)
	}
	p.shippingAlternatives = append([]ShippingOption(nil), alternatives...)
	return nil
}

func (p *Plan) setConfidence(confidence float64) error {
	if confidence < MinConfidence || confidence > MaxConfidence {
		return errs.NewValueIsOutOfRangeError("confidence", confidence, MinConfidence, MaxConfidence)
	}
	p.confidence = confidence
	return nil
}

func (p *Plan) setOptimizationScore(score float64) error {
	if score < 0 || score > 1 {
		return errs.NewValueIsOutOfRangeError("optimizationScore", score, 0, 1)
	}
	p.optimizationScore = score
	return nil
}
