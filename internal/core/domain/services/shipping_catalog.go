package services

import (
	"context"
	"sort"

	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/pkg/errs"
)

// Carrier reliability constants and the carbon-neutral surcharge.
const (
	uspsGroundReliability       = 0.92
	upsGroundReliability        = 0.95
	fedex2DayReliability        = 0.97
	fedexOvernightReliability   = 0.98
	upsCarbonNeutralReliability = 0.94

	carbonNeutralSurcharge = 1.15
)

// DistanceEstimator maps a destination to an estimated shipping distance
// in miles. Implementations may be static tables or live geo services.
type DistanceEstimator interface {
	EstimateDistance(ctx context.Context, destination fulfillment.Address) (float64, error)
}

// RateTable maps a carrier/service/weight/distance tuple to a monetary
// cost in dollars.
type RateTable interface {
	LookupRate(ctx context.Context, carrier string, service string, weight float64, distance float64) (float64, error)
}

// ShippingCatalog enumerates candidate carrier/service options for a
// fulfillment request. It always offers four baseline services (USPS
// Ground Advantage, UPS Ground, FedEx 2Day, FedEx Priority Overnight) and
// adds a UPS carbon-neutral variant for eco-minded customers.
//
// Cost correctness depends on the rate table, so a rate lookup failure
// fails the whole catalog rather than silently substituting a default.
type ShippingCatalog struct {
	distances DistanceEstimator
	rates     RateTable
}

// NewShippingCatalog creates a ShippingCatalog backed by the given
// distance and rate collaborators.
func NewShippingCatalog(distances DistanceEstimator, rates RateTable) ShippingCatalog {
	return ShippingCatalog{
		distances: distances,
		rates:     rates,
	}
}

// Generate enumerates shipping candidates for the request and total
// package weight (packaging tare plus item weight), ordered best-first per
// the customer's preferences.
func (c ShippingCatalog) Generate(
	ctx context.Context,
	request *fulfillment.Request,
	packageWeight float64,
) ([]fulfillment.ShippingOption, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	distance, err := c.distances.EstimateDistance(ctx, request.Destination())
	if err != nil {
		return nil, errs.NewDependencyFailedError("distance estimator", err)
	}

	uspsGroundDays := max(3, int(distance/500)+2)
	upsGroundDays := max(2, int(distance/600)+1)

	uspsGroundCost, err := c.lookupRate(ctx, "usps", "ground", packageWeight, distance)
	if err != nil {
		return nil, err
	}
	upsGroundCost, err := c.lookupRate(ctx, "ups", "ground", packageWeight, distance)
	if err != nil {
		return nil, err
	}
	fedex2DayCost, err := c.lookupRate(ctx, "fedex", "2day", packageWeight, distance)
	if err != nil {
		return nil, err
	}
	fedexOvernightCost, err := c.lookupRate(ctx, "fedex", "overnight", packageWeight, distance)
	if err != nil {
		return nil, err
	}

	options := []fulfillment.ShippingOption{
		{
			ID:                "usps-ground",
			Carrier:           "USPS",
			Service:           "Ground Advantage",
			EstimatedDays:     uspsGroundDays,
			Cost:              uspsGroundCost,
			TrackingIncluded:  true,
			InsuranceIncluded: false,
			SignatureRequired: false,
			Sustainability:    fulfillment.ShippingSustainabilityStandard,
			Reliability:       uspsGroundReliability,
		},
		{
			ID:                "ups-ground",
			Carrier:           "UPS",
			Service:           "Ground",
			EstimatedDays:     upsGroundDays,
			Cost:              upsGroundCost,
			TrackingIncluded:  true,
			InsuranceIncluded: true,
			SignatureRequired: false,
			Sustainability:    fulfillment.ShippingSustainabilityStandard,
			Reliability:       upsGroundReliability,
		},
		{
			ID:                "fedex-2day",
			Carrier:           "FedEx",
			Service:           "2Day",
			EstimatedDays:     2,
			Cost:              fedex2DayCost,
			TrackingIncluded:  true,
			InsuranceIncluded: true,
			SignatureRequired: false,
			Sustainability:    fulfillment.ShippingSustainabilityStandard,
			Reliability:       fedex2DayReliability,
		},
		{
			ID:                "fedex-overnight",
			Carrier:           "FedEx",
			Service:           "Priority Overnight",
			EstimatedDays:     1,
			Cost:              fedexOvernightCost,
			TrackingIncluded:  true,
			InsuranceIncluded: true,
			SignatureRequired: true,
			Sustainability:    fulfillment.ShippingSustainabilityStandard,
			Reliability:       fedexOvernightReliability,
		},
	}

	if request.Preferences().Sustainability != fulfillment.SustainabilityStandard {
		options = append(options, fulfillment.ShippingOption{
			ID:                "ups-carbon-neutral",
			Carrier:           "UPS",
			Service:           "Ground (Carbon Neutral)",
			EstimatedDays:     upsGroundDays,
			Cost:              upsGroundCost * carbonNeutralSurcharge,
			TrackingIncluded:  true,
			InsuranceIncluded: true,
			SignatureRequired: false,
			Sustainability:    fulfillment.ShippingCarbonNeutral,
			Reliability:       upsCarbonNeutralReliability,
		})
	}

	sortShippingByPreference(options, request.Preferences())
	return options, nil
}

func (c ShippingCatalog) lookupRate(
	ctx context.Context,
	carrier string,
	service string,
	weight float64,
	distance float64,
) (float64, error) {
	cost, err := c.rates.LookupRate(ctx, carrier, service, weight, distance)
	if err != nil {
		return 0, errs.NewDependencyFailedError("rate table", err)
	}
	return cost, nil
}

// sortShippingByPreference orders candidates best-first: fastest for
// express customers, cheapest for economy, carbon-neutral first for
// carbon_neutral_only, and most reliable otherwise.
func sortShippingByPreference(options []fulfillment.ShippingOption, preferences fulfillment.Preferences) {
	sort.SliceStable(options, func(i, j int) bool {
		if preferences.Speed == fulfillment.SpeedExpress {
			return options[i].EstimatedDays < options[j].EstimatedDays
		}
		if preferences.Cost == fulfillment.CostEconomy {
			return options[i].Cost < options[j].Cost
		}
		if preferences.Sustainability == fulfillment.SustainabilityCarbonNeutralOnly {
			if options[i].IsCarbonNeutral() != options[j].IsCarbonNeutral() {
				return options[i].IsCarbonNeutral()
			}
		}
		return options[i].Reliability > options[j].Reliability
	})
}

