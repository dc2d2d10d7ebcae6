package detector

import (
	"regexp"
	"strings"
)

var (
	nonAlnumPattern  = regexp.MustCompile(`[^A-Z0-9]`)
	longDigitPattern = regexp.MustCompile(`[0-9]{4,}`)
)

// maxKeyLength caps normalized keys so over-long descriptors with
// trailing junk still group together.
const maxKeyLength = 20

// NormalizeMerchant maps raw merchant text to a stable grouping key:
// uppercase, alphanumerics only, with runs of 4+ digits removed
// (store and location IDs), truncated to 20 characters.
//
// An empty result means the merchant cannot be grouped reliably and the
// transaction is dropped from analysis.
func NormalizeMerchant(raw string) string {
	key := strings.ToUpper(raw)
	key = nonAlnumPattern.ReplaceAllString(key, "")
	key = longDigitPattern.ReplaceAllString(key, "")
	if len(key) > maxKeyLength {
		key = key[:maxKeyLength]
	}
	return key
}
