package services

import (
	"math"
	"sort"

	"fulfillment/internal/core/domain/model/fulfillment"
)

// Packing allowances and per-option constants. Costs are per-box in
// dollars; tare weights derive from the total item weight with fixed
// floors so even featherweight orders get a real box.
const (
	packingMaterialAllowance = 1.3

	standardBoxCost           = 3.50
	standardBoxSustainability = 0.6

	ecoBoxCost           = 4.25
	ecoBoxSustainability = 0.9

	premiumBoxCost           = 8.50
	premiumBoxSizeFactor     = 1.2
	premiumBoxSustainability = 0.7
	premiumValueThreshold    = 100

	brandedBoxCost           = 6.75
	brandedBoxSizeFactor     = 1.1
	brandedBoxSustainability = 0.65
)

// PackagingCatalog enumerates candidate packaging options for a
// fulfillment request. Generation is a pure function of the request:
// identical requests always yield identical ordered catalogs.
//
// Catalog composition:
//   - A standard corrugated box is always offered
//   - An eco-friendly box joins when the customer prefers sustainability
//   - A premium box joins for high-value orders or premium cost preference
//   - A custom branded box is always offered
type PackagingCatalog struct{}

// NewPackagingCatalog creates a new PackagingCatalog instance.
func NewPackagingCatalog() PackagingCatalog {
	return PackagingCatalog{}
}

// Generate enumerates packaging candidates for the request, ordered
// best-first per the customer's preferences.
func (c PackagingCatalog) Generate(request *fulfillment.Request) ([]fulfillment.PackagingOption, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	totalVolume := request.TotalVolume()
	totalWeight := request.TotalWeight()
	totalValue := request.TotalValue()
	fragile := request.HasFragileItems()
	preferences := request.Preferences()

	baseProtection := fulfillment.ProtectionBasic
	if fragile {
		baseProtection = fulfillment.ProtectionEnhanced
	}

	options := []fulfillment.PackagingOption{{
		ID:             "standard-box",
		Type:           fulfillment.PackagingStandard,
		Material:       "corrugated_cardboard",
		Dimensions:     boxDimensions(totalVolume, 1),
		Weight:         math.Max(0.5, totalWeight*0.1),
		Cost:           standardBoxCost,
		Protection:     baseProtection,
		Customizations: []string{},
		Sustainability: standardBoxSustainability,
	}}

	if preferences.Sustainability.PrefersEco() {
		options = append(options, fulfillment.PackagingOption{
			ID:             "eco-box",
			Type:           fulfillment.PackagingEcoFriendly,
			Material:       "recycled_cardboard",
			Dimensions:     boxDimensions(totalVolume, 1),
			Weight:         math.Max(0.4, totalWeight*0.08),
			Cost:           ecoBoxCost,
			Protection:     baseProtection,
			Customizations: []string{"biodegradable_padding", "recycled_tape"},
			Sustainability: ecoBoxSustainability,
		})
	}

	if totalValue > premiumValueThreshold || preferences.Cost == fulfillment.CostPremium {
		options = append(options, fulfillment.PackagingOption{
			ID:             "premium-box",
			Type:           fulfillment.PackagingPremium,
			Material:       "rigid_cardboard",
			Dimensions:     boxDimensions(totalVolume, premiumBoxSizeFactor),
			Weight:         math.Max(0.8, totalWeight*0.15),
			Cost:           premiumBoxCost,
			Protection:     fulfillment.ProtectionMaximum,
			Customizations: []string{"foam_inserts", "tissue_paper", "thank_you_card"},
			Sustainability: premiumBoxSustainability,
		})
	}

	options = append(options, fulfillment.PackagingOption{
		ID:             "branded-box",
		Type:           fulfillment.PackagingCustomBranded,
		Material:       "custom_printed_cardboard",
		Dimensions:     boxDimensions(totalVolume, brandedBoxSizeFactor),
		Weight:         math.Max(0.6, totalWeight*0.12),
		Cost:           brandedBoxCost,
		Protection:     fulfillment.ProtectionEnhanced,
		Customizations: []string{"brand_logo", "custom_colors", "marketing_insert"},
		Sustainability: brandedBoxSustainability,
	})

	sortPackagingByPreference(options, preferences)
	return options, nil
}

// boxDimensions sizes a box for the given item volume. The adjusted volume
// includes the size factor and the packing material allowance; the sides
// are deliberately non-cubic for packing efficiency.
func boxDimensions(volume float64, factor float64) fulfillment.Dimensions {
	side := math.Cbrt(volume * factor * packingMaterialAllowance)
	return fulfillment.Dimensions{
		Length: math.Ceil(side * 1.2),
		Width:  math.Ceil(side),
		Height: math.Ceil(side * 0.8),
	}
}

// sortPackagingByPreference orders candidates best-first: sustainability
// descending for eco-minded customers, then cost ascending for economy or
// descending for premium. Balanced customers keep the generation order.
func sortPackagingByPreference(options []fulfillment.PackagingOption, preferences fulfillment.Preferences) {
	sort.SliceStable(options, func(i, j int) bool {
		if preferences.Sustainability.PrefersEco() {
			return options[i].Sustainability > options[j].Sustainability
		}
		if preferences.Cost == fulfillment.CostEconomy {
			return options[i].Cost < options[j].Cost
		}
		if preferences.Cost == fulfillment.CostPremium {
			return options[i].Cost > options[j].Cost
		}
		return false
	})
}
