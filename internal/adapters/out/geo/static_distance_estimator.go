// Package geo provides distance estimation for shipping destinations.
package geo

import (
	"context"

	"fulfillment/internal/core/domain/model/fulfillment"
)

// defaultDistanceMiles is used for destinations without a regional entry.
const defaultDistanceMiles = 800

// StaticDistanceEstimator estimates shipping distance from a fixed
// per-state table measured from the fulfillment center. It stands in for a
// live geo service and keeps candidate generation deterministic.
type StaticDistanceEstimator struct {
	distancesByState map[string]float64
}

// NewStaticDistanceEstimator creates an estimator with the built-in regional table.
func NewStaticDistanceEstimator() *StaticDistanceEstimator {
	return &StaticDistanceEstimator{
		distancesByState: map[string]float64{
			"CA": 800,
			"NY": 1200,
			"TX": 900,
			"FL": 1100,
			"IL": 700,
		},
	}
}

// EstimateDistance returns the distance in miles to the destination state.
// Unknown states fall back to the default distance.
func (e *StaticDistanceEstimator) EstimateDistance(_ context.Context, destination fulfillment.Address) (float64, error) {
	if miles, ok := e.distancesByState[destination.State()]; ok {
		return miles, nil
	}
	return defaultDistanceMiles, nil
}
