package utils

import (
	"fmt"
	"strings"
	"time"
)

const (
	ltaNumberPrefix      = "LTA"
	trackingNumberPrefix = "TRK"
	paymentRefPrefix     = "PAY"

	ltaNumberSuffixLen      = 6
	trackingNumberSuffixLen = 10
)

// GenerateLTANumber produces a candidate air waybill number of the form
// LTA-YYYYMMDD-XXXXXX. Uniqueness is not guaranteed here; callers must check
// against storage and retry on collision.
func GenerateLTANumber(now time.Time) (string, error) {
	suffix, err := GenerateSecureRandomString(ltaNumberSuffixLen)
	if err != nil {
		return "", fmt.Errorf("failed to generate LTA number suffix: %w", err)
	}
	return fmt.Sprintf("%s-%s-%s", ltaNumberPrefix, now.Format("20060102"), suffix), nil
}

// GenerateTrackingNumber produces a candidate public tracking number of the
// form TRK-XXXXXXXXXX. Callers must check uniqueness and retry on collision.
func GenerateTrackingNumber() (string, error) {
	suffix, err := GenerateSecureRandomString(trackingNumberSuffixLen)
	if err != nil {
		return "", fmt.Errorf("failed to generate tracking number suffix: %w", err)
	}
	return fmt.Sprintf("%s-%s", trackingNumberPrefix, suffix), nil
}

// GeneratePaymentReference builds a payment reference of the form
// PAY-YYYYMMDD-NNNN-SUFFIX where NNNN is the 1-based sequence of the payment
// on that day and SUFFIX is derived from the LTA identifier.
func GeneratePaymentReference(day time.Time, daySequence int, ltaID string) string {
	suffix := strings.ToUpper(strings.ReplaceAll(ltaID, "-", ""))
	if len(suffix) > 8 {
		suffix = suffix[len(suffix)-8:]
	}
	return fmt.Sprintf("%s-%s-%04d-%s", paymentRefPrefix, day.Format("20060102"), daySequence, suffix)
}

// BuildTrackingURL assembles the public tracking URL embedded in LTA QR
// codes.
func BuildTrackingURL(baseURL string, trackingNumber string) string {
	return fmt.Sprintf("%s/track/%s", strings.TrimRight(baseURL, "/"), trackingNumber)
}
