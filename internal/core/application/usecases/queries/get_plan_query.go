package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetPlanQueryIsNotConstructed = errors.New(
	"GetPlanQuery must be created via NewGetPlanQuery constructor",
)

// GetPlanQuery retrieves a stored fulfillment plan by its identifier.
//
// Example:
//
//	query, err := NewGetPlanQuery(planID)
//	if err != nil {
//	    return err
//	}
//
//	plan, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get plan: %w", err)
//	}
//	fmt.Printf("Plan %s costs $%.2f\n", plan.ID, plan.TotalCost)
type GetPlanQuery struct { //nolint:recvcheck //using for validation
	planID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPlanQuery creates a query to retrieve one plan.
func NewGetPlanQuery(planID kernel.UUID) (GetPlanQuery, error) {
	query := GetPlanQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setPlanID(planID); err != nil {
		return GetPlanQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPlanQueryIsNotConstructed if validation fails.
func (q GetPlanQuery) Validate() error {
	return q.guard.Validate(ErrGetPlanQueryIsNotConstructed)
}

// PlanID returns the identifier of the plan to retrieve.
func (q GetPlanQuery) PlanID() kernel.UUID {
	return q.planID
}

func (q *GetPlanQuery) setPlanID(planID kernel.UUID) error {
	if err := planID.Validate(); err != nil {
		return err
	}

	q.planID = planID
	return nil
}

// DimensionsResponse carries box dimensions in the read model.
type DimensionsResponse struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// PackagingOptionResponse is the read model of one packaging candidate.
type PackagingOptionResponse struct {
	ID             string             `json:"id"`
	Type           string             `json:"type"`
	Material       string             `json:"material"`
	Dimensions     DimensionsResponse `json:"dimensions"`
	Weight         float64            `json:"weight"`
	Cost           float64            `json:"cost"`
	Protection     string             `json:"protectionLevel"`
	Customizations []string           `json:"customizations,omitempty"`
	Sustainability float64            `json:"sustainabilityScore"`
}

// ShippingOptionResponse is the read model of one shipping candidate.
type ShippingOptionResponse struct {
	ID                string  `json:"id"`
	Carrier           string  `json:"carrier"`
	Service           string  `json:"service"`
	EstimatedDays     int     `json:"estimatedDays"`
	Cost              float64 `json:"cost"`
	TrackingIncluded  bool    `json:"trackingIncluded"`
	InsuranceIncluded bool    `json:"insuranceIncluded"`
	SignatureRequired bool    `json:"signatureRequired"`
	Sustainability    string  `json:"sustainability"`
	Reliability       float64 `json:"reliabilityScore"`
}

// GetPlanQueryResponse is the read model of a stored fulfillment plan.
type GetPlanQueryResponse struct {
	ID                    kernel.UUID
	OrderID               kernel.UUID
	RecommendedPackaging  PackagingOptionResponse
	RecommendedShipping   ShippingOptionResponse
	PackagingAlternatives []PackagingOptionResponse
	ShippingAlternatives  []ShippingOptionResponse
	TotalCost             float64
	EstimatedDelivery     time.Time
	CarbonFootprint       float64
	Confidence            float64
	OptimizationScore     float64
	Instructions          []string
}
