package fulfillment

// PackagingType identifies the kind of packaging a candidate option uses.
type PackagingType string

const (
	PackagingStandard      PackagingType = "standard"
	PackagingPremium       PackagingType = "premium"
	PackagingEcoFriendly   PackagingType = "eco_friendly"
	PackagingCustomBranded PackagingType = "custom_branded"
)

// ProtectionLevel describes how well a packaging option protects its contents.
type ProtectionLevel string

const (
	ProtectionBasic    ProtectionLevel = "basic"
	ProtectionEnhanced ProtectionLevel = "enhanced"
	ProtectionMaximum  ProtectionLevel = "maximum"
)

// Score maps the protection level onto the [0,1] scale used by the optimizer.
func (p ProtectionLevel) Score() float64 {
	switch p {
	case ProtectionMaximum:
		return 1.0
	case ProtectionEnhanced:
		return 0.8
	default:
		return 0.6
	}
}

// PackagingOption is a candidate packaging choice computed per request.
// Options are ephemeral value objects: they are derived deterministically
// from the request and only persist as part of a Plan.
type PackagingOption struct {
	ID             string
	Type           PackagingType
	Material       string
	Dimensions     Dimensions
	Weight         float64
	Cost           float64
	Protection     ProtectionLevel
	Customizations []string
	Sustainability float64
}
