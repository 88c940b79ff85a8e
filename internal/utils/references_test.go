package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateLTANumber_Format(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)

	number, err := GenerateLTANumber(now)
	require.NoError(t, err)

	parts := strings.Split(number, "-")
	require.Len(t, parts, 3)
	assert.Equal(t, "LTA", parts[0])
	assert.Equal(t, "20250314", parts[1])
	assert.Len(t, parts[2], ltaNumberSuffixLen)
}

func TestGenerateTrackingNumber_Format(t *testing.T) {
	number, err := GenerateTrackingNumber()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(number, "TRK-"))
	assert.Len(t, number, len("TRK-")+trackingNumberSuffixLen)
}

func TestGeneratePaymentReference(t *testing.T) {
	day := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	ref := GeneratePaymentReference(day, 3, "0d4ff2aa-9b1c-4a7e-8f21-6c3d5e7a9b01")

	assert.Equal(t, "PAY-20250314-0003-5E7A9B01", ref)
}

func TestGeneratePaymentReference_ShortID(t *testing.T) {
	day := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	ref := GeneratePaymentReference(day, 1, "ab12")

	assert.Equal(t, "PAY-20250314-0001-AB12", ref)
}

func TestBuildTrackingURL(t *testing.T) {
	assert.Equal(t, "https://fret.example.com/track/TRK-ABC123",
		BuildTrackingURL("https://fret.example.com/", "TRK-ABC123"))
	assert.Equal(t, "https://fret.example.com/track/TRK-ABC123",
		BuildTrackingURL("https://fret.example.com", "TRK-ABC123"))
}
