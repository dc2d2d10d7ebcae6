package detector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeMerchant_StripsStoreIDs(t *testing.T) {
	// Runs of 4+ digits are location/store IDs and must not split groups
	assert.Equal(t, "NETFLIXCOM", NormalizeMerchant("NETFLIX.COM 123456"))
	assert.Equal(t, "SPOTIFYUSA", NormalizeMerchant("Spotify USA 8884407"))
}

func TestNormalizeMerchant_KeepsShortDigitRuns(t *testing.T) {
	// Up to 3 consecutive digits are part of the name (e.g. "7-Eleven 711")
	assert.Equal(t, "7ELEVEN711", NormalizeMerchant("7-Eleven 711"))
}

func TestNormalizeMerchant_UppercasesAndStripsPunctuation(t *testing.T) {
	assert.Equal(t, "AMZNMKTPUS", NormalizeMerchant("amzn mktp us*"))
	assert.Equal(t, "PAYPALNETFLIX", NormalizeMerchant("PAYPAL *NETFLIX"))
}

func TestNormalizeMerchant_TruncatesToTwentyChars(t *testing.T) {
	key := NormalizeMerchant("A Very Long Merchant Descriptor With Trailing Junk")
	assert.Len(t, key, 20)
	assert.Equal(t, "AVERYLONGMERCHANTDES", key)
}

func TestNormalizeMerchant_EmptyInput(t *testing.T) {
	assert.Equal(t, "", NormalizeMerchant(""))
	assert.Equal(t, "", NormalizeMerchant("   ***   "))
	assert.Equal(t, "", NormalizeMerchant("12345678"))
}

func TestNormalizeMerchant_Deterministic(t *testing.T) {
	raw := "NETFLIX.COM 123456"
	assert.Equal(t, NormalizeMerchant(raw), NormalizeMerchant(raw))
}
