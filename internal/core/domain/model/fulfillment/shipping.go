package fulfillment

// SustainabilityTag classifies a shipping option's environmental profile.
type SustainabilityTag string

const (
	ShippingSustainabilityStandard SustainabilityTag = "standard"
	ShippingSustainabilityEco      SustainabilityTag = "eco_friendly"
	ShippingCarbonNeutral          SustainabilityTag = "carbon_neutral"
)

// ShippingOption is a candidate carrier/service choice computed per request.
// Like PackagingOption it is an ephemeral value object derived from the
// request, the distance estimate, and the rate table.
type ShippingOption struct {
	ID                string
	Carrier           string
	Service           string
	EstimatedDays     int
	Cost              float64
	TrackingIncluded  bool
	InsuranceIncluded bool
	SignatureRequired bool
	Sustainability    SustainabilityTag
	Reliability       float64
}

// IsCarbonNeutral reports whether the option ships carbon neutral.
func (o ShippingOption) IsCarbonNeutral() bool {
	return o.Sustainability == ShippingCarbonNeutral
}
