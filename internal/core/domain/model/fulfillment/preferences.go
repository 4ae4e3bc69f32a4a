package fulfillment

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// SpeedPreference expresses how quickly the customer wants the order delivered.
type SpeedPreference string

const (
	SpeedStandard SpeedPreference = "standard"
	SpeedFast     SpeedPreference = "fast"
	SpeedExpress  SpeedPreference = "express"
)

// Validate checks that the speed preference is one of the known values.
func (s SpeedPreference) Validate() error {
	switch s {
	case SpeedStandard, SpeedFast, SpeedExpress:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("speed preference",
			fmt.Errorf("%q is not a valid speed preference", string(s)))
	}
}

// CostPreference expresses the customer's price sensitivity.
type CostPreference string

const (
	CostEconomy  CostPreference = "economy"
	CostBalanced CostPreference = "balanced"
	CostPremium  CostPreference = "premium"
)

// Validate checks that the cost preference is one of the known values.
func (c CostPreference) Validate() error {
	switch c {
	case CostEconomy, CostBalanced, CostPremium:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("cost preference",
			fmt.Errorf("%q is not a valid cost preference", string(c)))
	}
}

// SustainabilityPreference expresses how strongly the customer weighs
// environmental impact when choosing packaging and shipping.
type SustainabilityPreference string

const (
	SustainabilityStandard          SustainabilityPreference = "standard"
	SustainabilityEcoPreferred      SustainabilityPreference = "eco_preferred"
	SustainabilityCarbonNeutralOnly SustainabilityPreference = "carbon_neutral_only"
)

// Validate checks that the sustainability preference is one of the known values.
func (s SustainabilityPreference) Validate() error {
	switch s {
	case SustainabilityStandard, SustainabilityEcoPreferred, SustainabilityCarbonNeutralOnly:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("sustainability preference",
			fmt.Errorf("%q is not a valid sustainability preference", string(s)))
	}
}

// PrefersEco reports whether the preference asks for eco-friendly handling.
func (s SustainabilityPreference) PrefersEco() bool {
	return s == SustainabilityEcoPreferred || s == SustainabilityCarbonNeutralOnly
}

// Preferences bundles the customer's delivery preferences for one order.
type Preferences struct {
	Speed          SpeedPreference
	Cost           CostPreference
	Sustainability SustainabilityPreference
}

// Validate checks every preference axis.
func (p Preferences) Validate() error {
	if err := p.Speed.Validate(); err != nil {
		return err
	}
	if err := p.Cost.Validate(); err != nil {
		return err
	}
	return p.Sustainability.Validate()
}
