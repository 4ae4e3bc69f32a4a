package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

func testRequest(t *testing.T) *fulfillment.Request {
	t.Helper()

	item, err := fulfillment.NewItem("SKU-1", 2, fulfillment.Dimensions{Length: 30, Width: 20, Height: 10}, 1.5, false, 40)
	require.NoError(t, err)

	destination, err := fulfillment.NewAddress("123 Main St", "Austin", "TX", "78701", "US")
	require.NoError(t, err)

	request, err := fulfillment.NewRequest(
		kernel.NewUUID(),
		[]fulfillment.Item{item},
		destination,
		fulfillment.Preferences{
			Speed:          fulfillment.SpeedStandard,
			Cost:           fulfillment.CostBalanced,
			Sustainability: fulfillment.SustainabilityStandard,
		},
		nil,
	)
	require.NoError(t, err)

	return request
}

func testPlan(t *testing.T, orderID kernel.UUID) *fulfillment.Plan {
	t.Helper()

	packaging := fulfillment.PackagingOption{
		ID:             "pkg_standard",
		Type:           fulfillment.PackagingStandard,
		Material:       "corrugated cardboard",
		Dimensions:     fulfillment.Dimensions{Length: 24, Width: 20, Height: 16},
		Weight:         0.3,
		Cost:           3.50,
		Protection:     fulfillment.ProtectionBasic,
		Sustainability: 0.6,
	}
	shipping := fulfillment.ShippingOption{
		ID:                "ship_ups_ground",
		Carrier:           "UPS",
		Service:           "Ground",
		EstimatedDays:     3,
		Cost:              12.50,
		TrackingIncluded:  true,
		InsuranceIncluded: true,
		Sustainability:    fulfillment.ShippingSustainabilityStandard,
		Reliability:       0.95,
	}

	plan, err := fulfillment.NewPlan(
		kernel.NewUUID(),
		orderID,
		packaging,
		shipping,
		nil,
		nil,
		time.Now().AddDate(0, 0, 3),
		0.2,
		0.85,
		0.7,
		[]string{"Pack items in corrugated cardboard with standard protection"},
	)
	require.NoError(t, err)

	return plan
}
