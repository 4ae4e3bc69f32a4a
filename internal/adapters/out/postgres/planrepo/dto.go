// Package planrepo provides data transfer objects and mapping functions for plan persistence.
// This package implements the repository pattern for the fulfillment plan aggregate, handling
// the conversion between domain entities and database representations.
package planrepo

import (
	"encoding/json"
	"time"

	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PlanDTO represents the database structure for persisting plan aggregates.
// Candidate options and instructions are stored as JSONB documents since they
// are value objects read back as a whole, never queried field by field.
type PlanDTO struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID               uuid.UUID `gorm:"type:uuid;index"`
	RecommendedPackaging  datatypes.JSON
	RecommendedShipping   datatypes.JSON
	PackagingAlternatives datatypes.JSON
	ShippingAlternatives  datatypes.JSON
	TotalCost             float64
	EstimatedDelivery     time.Time
	CarbonFootprint       float64
	Confidence            float64
	OptimizationScore     float64
	Instructions          datatypes.JSON
	CreatedAt             time.Time
}

// TableName specifies the database table name for plan entities.
// Overrides GORM's default naming convention to use "plans".
func (PlanDTO) TableName() string {
	return "plans"
}

type dimensionsDoc struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type packagingOptionDoc struct {
	ID             string        `json:"id"`
	Type           string        `json:"type"`
	Material       string        `json:"material"`
	Dimensions     dimensionsDoc `json:"dimensions"`
	Weight         float64       `json:"weight"`
	Cost           float64       `json:"cost"`
	Protection     string        `json:"protectionLevel"`
	Customizations []string      `json:"customizations,omitempty"`
	Sustainability float64       `json:"sustainabilityScore"`
}

type shippingOptionDoc struct {
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

func packagingToDoc(option fulfillment.PackagingOption) packagingOptionDoc {
	return packagingOptionDoc{
		ID:       option.ID,
		Type:     string(option.Type),
		Material: option.Material,
		Dimensions: dimensionsDoc{
			Length: option.Dimensions.Length,
			Width:  option.Dimensions.Width,
			Height: option.Dimensions.Height,
		},
		Weight:         option.Weight,
		Cost:           option.Cost,
		Protection:     string(option.Protection),
		Customizations: option.Customizations,
		Sustainability: option.Sustainability,
	}
}

func packagingFromDoc(doc packagingOptionDoc) fulfillment.PackagingOption {
	return fulfillment.PackagingOption{
		ID:       doc.ID,
		Type:     fulfillment.PackagingType(doc.Type),
		Material: doc.Material,
		Dimensions: fulfillment.Dimensions{
			Length: doc.Dimensions.Length,
			Width:  doc.Dimensions.Width,
			Height: doc.Dimensions.Height,
		},
		Weight:         doc.Weight,
		Cost:           doc.Cost,
		Protection:     fulfillment.ProtectionLevel(doc.Protection),
		Customizations: doc.Customizations,
		Sustainability: doc.Sustainability,
	}
}

func shippingToDoc(option fulfillment.ShippingOption) shippingOptionDoc {
	return shippingOptionDoc{
		ID:                option.ID,
		Carrier:           option.Carrier,
		Service:           option.Service,
		EstimatedDays:     option.EstimatedDays,
		Cost:              option.Cost,
		TrackingIncluded:  option.TrackingIncluded,
		InsuranceIncluded: option.InsuranceIncluded,
		SignatureRequired: option.SignatureRequired,
		Sustainability:    string(option.Sustainability),
		Reliability:       option.Reliability,
	}
}

func shippingFromDoc(doc shippingOptionDoc) fulfillment.ShippingOption {
	return fulfillment.ShippingOption{
		ID:                doc.ID,
		Carrier:           doc.Carrier,
		Service:           doc.Service,
		EstimatedDays:     doc.EstimatedDays,
		Cost:              doc.Cost,
		TrackingIncluded:  doc.TrackingIncluded,
		InsuranceIncluded: doc.InsuranceIncluded,
		SignatureRequired: doc.SignatureRequired,
		Sustainability:    fulfillment.SustainabilityTag(doc.Sustainability),
		Reliability:       doc.Reliability,
	}
}

// fromDomain converts a plan domain aggregate to its database representation.
func fromDomain(plan *fulfillment.Plan) (PlanDTO, error) {
	recommendedPackaging, err := json.Marshal(packagingToDoc(plan.RecommendedPackaging()))
	if err != nil {
		return PlanDTO{}, err
	}

	recommendedShipping, err := json.Marshal(shippingToDoc(plan.RecommendedShipping()))
	if err != nil {
		return PlanDTO{}, err
	}

	packagingAlternatives := make([]packagingOptionDoc, 0, len(plan.PackagingAlternatives()))
	for _, option := range plan.PackagingAlternatives() {
		packagingAlternatives = append(packagingAlternatives, packagingToDoc(option))
	}
	packagingAlternativesJSON, err := json.Marshal(packagingAlternatives)
	if err != nil {
		return PlanDTO{}, err
	}

	shippingAlternatives := make([]shippingOptionDoc, 0, len(plan.ShippingAlternatives()))
	for _, option := range plan.ShippingAlternatives() {
		shippingAlternatives = append(shippingAlternatives, shippingToDoc(option))
	}
	shippingAlternativesJSON, err := json.Marshal(shippingAlternatives)
	if err != nil {
		return PlanDTO{}, err
	}

	instructions, err := json.Marshal(plan.Instructions())
	if err != nil {
		return PlanDTO{}, err
	}

	return PlanDTO{
		ID:                    plan.ID().Bytes(),
		OrderID:               plan.OrderID().Bytes(),
		RecommendedPackaging:  datatypes.JSON(recommendedPackaging),
		RecommendedShipping:   datatypes.JSON(recommendedShipping),
		PackagingAlternatives: datatypes.JSON(packagingAlternativesJSON),
		ShippingAlternatives:  datatypes.JSON(shippingAlternativesJSON),
		TotalCost:             plan.TotalCost(),
		EstimatedDelivery:     plan.EstimatedDelivery(),
		CarbonFootprint:       plan.CarbonFootprint(),
		Confidence:            plan.Confidence(),
		OptimizationScore:     plan.OptimizationScore(),
		Instructions:          datatypes.JSON(instructions),
	}, nil
}

// toDomain converts a database DTO to a plan domain aggregate using RestorePlan,
// which re-checks the cost invariant against the stored total.
func toDomain(dto PlanDTO) (*fulfillment.Plan, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var recommendedPackagingDoc packagingOptionDoc
	if err := json.Unmarshal(dto.RecommendedPackaging, &recommendedPackagingDoc); err != nil {
		return nil, err
	}

	var recommendedShippingDoc shippingOptionDoc
	if err := json.Unmarshal(dto.RecommendedShipping, &recommendedShippingDoc); err != nil {
		return nil, err
	}

	var packagingAlternativeDocs []packagingOptionDoc
	if err := json.Unmarshal(dto.PackagingAlternatives, &packagingAlternativeDocs); err != nil {
		return nil, err
	}

	var shippingAlternativeDocs []shippingOptionDoc
	if err := json.Unmarshal(dto.ShippingAlternatives, &shippingAlternativeDocs); err != nil {
		return nil, err
	}

	var instructions []string
	if err := json.Unmarshal(dto.Instructions, &instructions); err != nil {
		return nil, err
	}

	packagingAlternatives := make([]fulfillment.PackagingOption, 0, len(packagingAlternativeDocs))
	for _, doc := range packagingAlternativeDocs {
		packagingAlternatives = append(packagingAlternatives, packagingFromDoc(doc))
	}

	shippingAlternatives := make([]fulfillment.ShippingOption, 0, len(shippingAlternativeDocs))
	for _, doc := range shippingAlternativeDocs {
		shippingAlternatives = append(shippingAlternatives, shippingFromDoc(doc))
	}

	return fulfillment.RestorePlan(
		id,
		orderID,
		packagingFromDoc(recommendedPackagingDoc),
		shippingFromDoc(recommendedShippingDoc),
		packagingAlternatives,
		shippingAlternatives,
		dto.TotalCost,
		dto.EstimatedDelivery,
		dto.CarbonFootprint,
		dto.Confidence,
		dto.OptimizationScore,
		instructions,
	)
}
