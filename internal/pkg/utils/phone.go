package utils

import (
	"fmt"
	"regexp"
	"strings"

	"conexperto-service/internal/pkg/constvars"
)

var reNonDigit = regexp.MustCompile(`\D`)

// StripToDigits removes every non-digit character. Phone and identity
// document fields are submitted to the gateway digit-only.
func StripToDigits(input string) string {
	return reNonDigit.ReplaceAllString(strings.TrimSpace(input), "")
}

// NormalizeWalletPhone returns the phone in international-dialing format
// without '+'. A 10-digit local number gets the country prefix prepended; a
// number already carrying the prefix passes through unchanged.
func NormalizeWalletPhone(input string) (string, error) {
	digits := StripToDigits(input)
	if digits == "" {
		return "", fmt.Errorf("phone is required")
	}

	prefixed := constvars.PhoneCountryPrefix
	switch {
	case len(digits) == constvars.LocalPhoneDigits:
		return prefixed + digits, nil
	case len(digits) == constvars.LocalPhoneDigits+len(prefixed) && strings.HasPrefix(digits, prefixed):
		return digits, nil
	default:
		return "", fmt.Errorf("phone must be %d local digits or %d digits including the %s prefix",
			constvars.LocalPhoneDigits, constvars.LocalPhoneDigits+len(prefixed), prefixed)
	}
}

// NormalizeDocumentNumber strips an identity document number to digits.
func NormalizeDocumentNumber(input string) (string, error) {
	digits := StripToDigits(input)
	if digits == "" {
		return "", fmt.Errorf("document number is required")
	}
	return digits, nil
}
