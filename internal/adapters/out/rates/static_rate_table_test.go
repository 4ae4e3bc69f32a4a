package rates_test

import (
	"testing"

	"fulfillment/internal/adapters/out/rates"

	"github.com/stretchr/testify/require"
)

func TestStaticRateTable_BaseRates(t *testing.T) {
	table := rates.NewStaticRateTable()
	ctx := t.Context()

	tests := []struct {
		carrier  string
		service  string
		expected float64
	}{
		{"usps", "ground", 8.50},
		{"ups", "ground", 12.50},
		{"fedex", "2day", 25.50},
		{"fedex", "overnight", 65.00},
		{"fedex", "ground", 11.75},
	}

	for _, tc := range tests {
		// Light package, short distance: multipliers clamp to 1.
		cost, err := table.LookupRate(ctx, tc.carrier, tc.service, 1, 500)
		require.NoError(t, err)
		require.InDelta(t, tc.expected, cost, 1e-9, "%s.%s", tc.carrier, tc.service)
	}
}

func TestStaticRateTable_UnknownPairUsesDefault(t *testing.T) {
	table := rates.NewStaticRateTable()

	cost, err := table.LookupRate(t.Context(), "dhl", "express", 1, 500)
	require.NoError(t, err)
	require.InDelta(t, 10.0, cost, 1e-9)
}

func TestStaticRateTable_WeightAndDistanceMultipliers(t *testing.T) {
	table := rates.NewStaticRateTable()
	ctx := t.Context()

	// 6 lbs -> x3 weight, 2000 miles -> x2 distance.
	cost, err := table.LookupRate(ctx, "usps", "ground", 6, 2000)
	require.NoError(t, err)
	require.InDelta(t, 51.00, cost, 1e-9)

	// Rounded to cents.
	cost, err = table.LookupRate(ctx, "fedex", "ground", 3, 1100)
	require.NoError(t, err)
	require.InDelta(t, 19.39, cost, 1e-9)
}
