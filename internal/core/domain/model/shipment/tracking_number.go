package shipment

import "math/rand/v2"

const (
	trackingSuffixLength  = 12
	trackingSuffixCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	defaultTrackingPrefix = "12"
)

func getCarrierPrefixes() map[string]string {
	return map[string]string{
		"UPS":   "1Z",
		"FedEx": "96",
		"USPS":  "94",
	}
}

// GenerateTrackingNumber produces a carrier-prefixed tracking number with a
// random alphanumeric suffix. The suffix is not collision-checked; the
// shipment store's unique index on tracking numbers is the only safety net.
// A production deployment should allocate numbers from the carrier API.
func GenerateTrackingNumber(carrier string) string {
	prefix, ok := getCarrierPrefixes()[carrier]
	if !ok {
		prefix = defaultTrackingPrefix
	}

	suffix := make([]byte, trackingSuffixLength)
	for i := range suffix {
		suffix[i] = trackingSuffixCharset[rand.IntN(len(trackingSuffixCharset))] //nolint:gosec // it's ok
	}

	return prefix + string(suffix)
}
