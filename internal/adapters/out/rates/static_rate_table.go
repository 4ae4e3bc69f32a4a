// Package rates provides carrier rate lookup for shipping candidates.
package rates

import (
	"context"
	"math"
)

// defaultBaseRate applies to carrier/service pairs without a table entry.
const defaultBaseRate = 10.0

// StaticRateTable computes shipping cost from a fixed base-rate table with
// weight and distance multipliers. It stands in for live carrier rate APIs.
//
// The cost model scales the base rate by weight in 2 lb steps and distance
// in 1000 mile steps, so light nearby packages pay the base rate as-is.
type StaticRateTable struct {
	baseRates map[string]float64
}

// NewStaticRateTable creates a rate table with the built-in carrier rates.
func NewStaticRateTable() *StaticRateTable {
	return &StaticRateTable{
		baseRates: map[string]float64{
			"usps.ground":     8.50,
			"ups.ground":      12.50,
			"fedex.2day":      25.50,
			"fedex.overnight": 65.00,
			"fedex.ground":    11.75,
		},
	}
}

// LookupRate returns the cost in dollars for the carrier/service pair at the
// given package weight (lbs) and distance (miles), rounded to cents.
func (t *StaticRateTable) LookupRate(
	_ context.Context,
	carrier string,
	service string,
	weight float64,
	distance float64,
) (float64, error) {
	base, ok := t.baseRates[carrier+"."+service]
	if !ok {
		base = defaultBaseRate
	}

	weightMultiplier := math.Max(1, weight/2)
	distanceMultiplier := math.Max(1, distance/1000)

	return math.Round(base*weightMultiplier*distanceMultiplier*100) / 100, nil
}
