package services_test

import (
	"context"
	"testing"

	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

// requestSpec tweaks the parts of a fulfillment request that the domain
// services branch on.
type requestSpec struct {
	preferences         fulfillment.Preferences
	fragile             bool
	unitValue           float64
	specialRequirements []string
}

func defaultSpec() requestSpec {
	return requestSpec{
		preferences: fulfillment.Preferences{
			Speed:          fulfillment.SpeedStandard,
			Cost:           fulfillment.CostBalanced,
			Sustainability: fulfillment.SustainabilityStandard,
		},
		unitValue: 40,
	}
}

func newRequest(t *testing.T, spec requestSpec) *fulfillment.Request {
	t.Helper()

	item, err := fulfillment.NewItem("SKU-1", 2,
		fulfillment.Dimensions{Length: 10, Width: 10, Height: 10}, 1.0, spec.fragile, spec.unitValue)
	require.NoError(t, err)

	destination, err := fulfillment.NewAddress("500 Congress Ave", "Austin", "TX", "78701", "US")
	require.NoError(t, err)

	request, err := fulfillment.NewRequest(
		kernel.NewUUID(), []fulfillment.Item{item}, destination,
		spec.preferences, spec.specialRequirements,
	)
	require.NoError(t, err)
	return request
}

// stubDistances returns a fixed mileage for every destination.
type stubDistances struct {
	miles float64
	err   error
}

func (s stubDistances) EstimateDistance(_ context.Context, _ fulfillment.Address) (float64, error) {
	if s.err != nil {
		return 0, s.err
	}
	return s.miles, nil
}

// stubRates applies the production rate formula over a small base table so
// catalog tests can predict costs without the rates adapter.
type stubRates struct {
	err error
}

func (s stubRates) LookupRate(
	_ context.Context, carrier string, service string, weight float64, distance float64,
) (float64, error) {
	if s.err != nil {
		return 0, s.err
	}

	base := map[string]float64{
		"usps.ground":     8.50,
		"ups.ground":      12.50,
		"fedex.2day":      25.50,
		"fedex.overnight": 65.00,
	}[carrier+"."+service]

	weightFactor := weight / 2
	if weightFactor < 1 {
		weightFactor = 1
	}
	distanceFactor := distance / 1000
	if distanceFactor < 1 {
		distanceFactor = 1
	}
	return base * weightFactor * distanceFactor, nil
}
