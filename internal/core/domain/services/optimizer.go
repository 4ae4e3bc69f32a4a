package services

import (
	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/pkg/errs"
)

// Scoring weights. They sum to 1.0; the sustainability term is further
// scaled by a preference multiplier before its weight applies.
const (
	costWeight           = 0.30
	speedWeight          = 0.25
	sustainabilityWeight = 0.20
	reliabilityWeight    = 0.15
	protectionWeight     = 0.10

	// costReferenceTotal normalizes combined cost against a $50 baseline.
	costReferenceTotal = 50.0

	// searchDepth bounds the candidate pairs evaluated per axis. Scoring
	// only the top candidates of each pre-sorted catalog trades optimality
	// for predictable latency; widening this to the full cross-product is
	// deliberately avoided.
	searchDepth = 3
)

// Selection is the optimizer's winning packaging/shipping pair with its
// weighted score and the confidence estimate for the pick.
type Selection struct {
	Packaging  fulfillment.PackagingOption
	Shipping   fulfillment.ShippingOption
	Score      float64
	Confidence float64
}

// Optimizer scores candidate packaging/shipping pairs against the
// customer's preferences and selects the best combination.
//
// The search is bounded: only the top searchDepth options of each
// pre-sorted catalog are paired, and ties keep the first-seen pair, so the
// catalog ordering acts as an implicit tie-break favoring already-preferred
// options.
type Optimizer struct{}

// NewOptimizer creates a new Optimizer instance.
func NewOptimizer() Optimizer {
	return Optimizer{}
}

// Evaluate scores every pair from the leading candidates of both catalogs
// and returns the best-scoring selection.
func (o Optimizer) Evaluate(
	request *fulfillment.Request,
	packagingOptions []fulfillment.PackagingOption,
	shippingOptions []fulfillment.ShippingOption,
) (Selection, error) {
	if err := request.Validate(); err != nil {
		return Selection{}, err
	}
	if len(packagingOptions) == 0 {
		return Selection{}, errs.NewValueIsRequiredError("packagingOptions")
	}
	if len(shippingOptions) == 0 {
		return Selection{}, errs.NewValueIsRequiredError("shippingOptions")
	}

	packagingTop := topCandidates(packagingOptions)
	shippingTop := topCandidates(shippingOptions)

	best := Selection{
		Packaging: packagingTop[0],
		Shipping:  shippingTop[0],
	}

	for _, packaging := range packagingTop {
		for _, shipping := range shippingTop {
			score := o.score(request, packaging, shipping)
			if score > best.Score {
				best.Packaging = packaging
				best.Shipping = shipping
				best.Score = score
			}
		}
	}

	best.Confidence = o.confidence(request, best.Shipping)
	return best, nil
}

// score computes the weighted multi-criteria score in [0,1] for one pair.
func (o Optimizer) score(
	request *fulfillment.Request,
	packaging fulfillment.PackagingOption,
	shipping fulfillment.ShippingOption,
) float64 {
	preferences := request.Preferences()
	score := 0.0

	// Cost: cheaper pairs approach 1, pairs at or above the reference total score 0.
	totalCost := packaging.Cost + shipping.Cost
	costScore := 1 - totalCost/costReferenceTotal
	if costScore < 0 {
		costScore = 0
	}
	score += costScore * costWeight

	// Speed: express customers reward fewer transit days linearly; everyone
	// else just distinguishes acceptable (≤5 days) from slow.
	var speedScore float64
	if preferences.Speed == fulfillment.SpeedExpress {
		speedScore = 1 - float64(shipping.EstimatedDays)/7
	} else if shipping.EstimatedDays <= 5 {
		speedScore = 0.8
	} else {
		speedScore = 0.5
	}
	score += speedScore * speedWeight

	// Sustainability: the term weight scales with how much the customer cares.
	sustainabilityMultiplier := 0.3
	switch preferences.Sustainability {
	case fulfillment.SustainabilityCarbonNeutralOnly:
		sustainabilityMultiplier = 1.0
	case fulfillment.SustainabilityEcoPreferred:
		sustainabilityMultiplier = 0.7
	}
	shippingSustainability := 0.6
	if shipping.IsCarbonNeutral() {
		shippingSustainability = 1.0
	}
	sustainabilityScore := (packaging.Sustainability + shippingSustainability) / 2
	score += sustainabilityScore * sustainabilityMultiplier * sustainabilityWeight

	score += shipping.Reliability * reliabilityWeight
	score += packaging.Protection.Score() * protectionWeight

	if score > 1 {
		score = 1
	}
	return score
}

// confidence estimates how reliable the chosen pair is, independent of the
// optimization score. Standard preferences raise it, fragile items and
// special requirements lower it, and the carrier's reliability nudges it
// either way. Clamped to [MinConfidence, MaxConfidence].
func (o Optimizer) confidence(request *fulfillment.Request, shipping fulfillment.ShippingOption) float64 {
	confidence := 0.8

	if request.Preferences().Speed == fulfillment.SpeedStandard {
		confidence += 0.1
	}
	if request.Preferences().Cost == fulfillment.CostBalanced {
		confidence += 0.05
	}
	if request.HasFragileItems() {
		confidence -= 0.05
	}
	if len(request.SpecialRequirements()) > 0 {
		confidence -= 0.1
	}

	confidence += (shipping.Reliability - 0.9) * 0.5

	if confidence < fulfillment.MinConfidence {
		confidence = fulfillment.MinConfidence
	}
	if confidence > fulfillment.MaxConfidence {
		confidence = fulfillment.MaxConfidence
	}
	return confidence
}

func topCandidates[T any](options []T) []T {
	if len(options) > searchDepth {
		return options[:searchDepth]
	}
	return options
}
