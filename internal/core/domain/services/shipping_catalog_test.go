package services_test

import (
	"context"
	"errors"
	"testing"

	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func optionIDs(options []fulfillment.ShippingOption) []string {
	ids := make([]string, 0, len(options))
	for _, option := range options {
		ids = append(ids, option.ID)
	}
	return ids
}

func TestShippingCatalog_Generate(t *testing.T) {
	ctx := context.Background()

	// 900 miles keeps the distance factor at 1, and a 2 lb package keeps
	// the weight factor at 1, so every cost equals its base rate.
	catalog := services.NewShippingCatalog(stubDistances{miles: 900}, stubRates{})

	t.Run("should offer the four baseline services", func(t *testing.T) {
		options, err := catalog.Generate(ctx, newRequest(t, defaultSpec()), 2.0)

		require.NoError(t, err)
		assert.ElementsMatch(t, []string{
			"usps-ground", "ups-ground", "fedex-2day", "fedex-overnight",
		}, optionIDs(options))
	})

	t.Run("should price from the rate table", func(t *testing.T) {
		options, err := catalog.Generate(ctx, newRequest(t, defaultSpec()), 2.0)

		require.NoError(t, err)
		costs := map[string]float64{}
		for _, option := range options {
			costs[option.ID] = option.Cost
		}
		assert.InDelta(t, 8.50, costs["usps-ground"], 0.0001)
		assert.InDelta(t, 12.50, costs["ups-ground"], 0.0001)
		assert.InDelta(t, 25.50, costs["fedex-2day"], 0.0001)
		assert.InDelta(t, 65.00, costs["fedex-overnight"], 0.0001)
	})

	t.Run("should derive ground transit days from distance", func(t *testing.T) {
		options, err := catalog.Generate(ctx, newRequest(t, defaultSpec()), 2.0)

		require.NoError(t, err)
		days := map[string]int{}
		for _, option := range options {
			days[option.ID] = option.EstimatedDays
		}
		assert.Equal(t, 3, days["usps-ground"])
		assert.Equal(t, 2, days["ups-ground"])
		assert.Equal(t, 2, days["fedex-2day"])
		assert.Equal(t, 1, days["fedex-overnight"])
	})

	t.Run("should floor ground transit days for short hauls", func(t *testing.T) {
		nearby := services.NewShippingCatalog(stubDistances{miles: 50}, stubRates{})

		options, err := nearby.Generate(ctx, newRequest(t, defaultSpec()), 2.0)

		require.NoError(t, err)
		days := map[string]int{}
		for _, option := range options {
			days[option.ID] = option.EstimatedDays
		}
		assert.Equal(t, 3, days["usps-ground"])
		assert.Equal(t, 2, days["ups-ground"])
	})

	t.Run("should add carbon neutral variant for eco minded customers", func(t *testing.T) {
		spec := defaultSpec()
		spec.preferences.Sustainability = fulfillment.SustainabilityEcoPreferred

		options, err := catalog.Generate(ctx, newRequest(t, spec), 2.0)

		require.NoError(t, err)
		require.Len(t, options, 5)

		var variant fulfillment.ShippingOption
		for _, option := range options {
			if option.ID == "ups-carbon-neutral" {
				variant = option
			}
		}
		require.NotEmpty(t, variant.ID)
		assert.True(t, variant.IsCarbonNeutral())
		assert.InDelta(t, 12.50*1.15, variant.Cost, 1e-9) // base UPS Ground with the surcharge
		assert.Equal(t, 2, variant.EstimatedDays)
	})

	t.Run("should be deterministic for identical requests", func(t *testing.T) {
		spec := defaultSpec()
		spec.preferences.Sustainability = fulfillment.SustainabilityEcoPreferred

		first, err := catalog.Generate(ctx, newRequest(t, spec), 2.0)
		require.NoError(t, err)
		second, err := catalog.Generate(ctx, newRequest(t, spec), 2.0)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("should not offer carbon neutral variant by default", func(t *testing.T) {
		options, err := catalog.Generate(ctx, newRequest(t, defaultSpec()), 2.0)

		require.NoError(t, err)
		assert.NotContains(t, optionIDs(options), "ups-carbon-neutral")
	})

	t.Run("should sort most reliable first by default", func(t *testing.T) {
		options, err := catalog.Generate(ctx, newRequest(t, defaultSpec()), 2.0)

		require.NoError(t, err)
		assert.Equal(t, []string{
			"fedex-overnight", "fedex-2day", "ups-ground", "usps-ground",
		}, optionIDs(options))
	})

	t.Run("should sort fastest first for express customers", func(t *testing.T) {
		spec := defaultSpec()
		spec.preferences.Speed = fulfillment.SpeedExpress

		options, err := catalog.Generate(ctx, newRequest(t, spec), 2.0)

		require.NoError(t, err)
		assert.Equal(t, "fedex-overnight", options[0].ID)
		for i := 1; i < len(options); i++ {
			assert.LessOrEqual(t, options[i-1].EstimatedDays, options[i].EstimatedDays)
		}
	})

	t.Run("should sort cheapest first for economy customers", func(t *testing.T) {
		spec := defaultSpec()
		spec.preferences.Cost = fulfillment.CostEconomy

		options, err := catalog.Generate(ctx, newRequest(t, spec), 2.0)

		require.NoError(t, err)
		assert.Equal(t, []string{
			"usps-ground", "ups-ground", "fedex-2day", "fedex-overnight",
		}, optionIDs(options))
	})

	t.Run("should put carbon neutral first for carbon_neutral_only customers", func(t *testing.T) {
		spec := defaultSpec()
		spec.preferences.Sustainability = fulfillment.SustainabilityCarbonNeutralOnly

		options, err := catalog.Generate(ctx, newRequest(t, spec), 2.0)

		require.NoError(t, err)
		require.Len(t, options, 5)
		assert.Equal(t, "ups-carbon-neutral", options[0].ID)
		assert.Equal(t, "fedex-overnight", options[1].ID)
	})

	t.Run("should scale cost with package weight", func(t *testing.T) {
		options, err := catalog.Generate(ctx, newRequest(t, defaultSpec()), 6.0)

		require.NoError(t, err)
		for _, option := range options {
			if option.ID == "usps-ground" {
				assert.InDelta(t, 25.50, option.Cost, 0.0001) // 8.50 * 3
			}
		}
	})

	t.Run("should fail the whole catalog when the distance estimator fails", func(t *testing.T) {
		broken := services.NewShippingCatalog(
			stubDistances{err: errors.New("geo service unavailable")}, stubRates{},
		)

		options, err := broken.Generate(ctx, newRequest(t, defaultSpec()), 2.0)

		require.Error(t, err)
		assert.Nil(t, options)
		require.ErrorIs(t, err, errs.ErrDependencyFailed)
		assert.Contains(t, err.Error(), "distance estimator")
	})

	t.Run("should fail the whole catalog when a rate lookup fails", func(t *testing.T) {
		broken := services.NewShippingCatalog(
			stubDistances{miles: 900}, stubRates{err: errors.New("rate service unavailable")},
		)

		options, err := broken.Generate(ctx, newRequest(t, defaultSpec()), 2.0)

		require.Error(t, err)
		assert.Nil(t, options)
		require.ErrorIs(t, err, errs.ErrDependencyFailed)
		assert.Contains(t, err.Error(), "rate table")
	})

	t.Run("should fail for nil request", func(t *testing.T) {
		options, err := catalog.Generate(ctx, nil, 2.0)

		require.Error(t, err)
		assert.Nil(t, options)
	})
}
