// Package identity normalizes and validates the user identifiers a wallet
// can be derived from: a Gmail address or an international phone number.
//
// Every caller must normalize before validating or deriving, so cosmetically
// different inputs ("User@Gmail.com ", "user@gmail.com") resolve to the same
// identity. Normalization is idempotent.
package identity

import (
	"regexp"
	"strings"
)

// Flow names the identifier kind. The flow value doubles as the domain
// separation label mixed into seed derivation, so the literal strings are a
// frozen wire format: changing them re-keys every previously issued wallet.
type Flow string

const (
	FlowEmail Flow = "email"
	FlowPhone Flow = "phone"
)

var (
	emailRe           = regexp.MustCompile(`^[a-z0-9._%+-]+@gmail\.com$`)
	phoneRe           = regexp.MustCompile(`^\+?[1-9]\d{2,14}$`)
	phoneFormattingRe = regexp.MustCompile(`[\s\-()]`)
	nonDigitRe        = regexp.MustCompile(`\D`)
)

// NormalizeEmail lowercases and trims the address.
func NormalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// ValidateEmail reports whether raw is a well-formed address on the single
// supported consumer domain. Case and surrounding whitespace are ignored.
func ValidateEmail(raw string) bool {
	return emailRe.MatchString(NormalizeEmail(raw))
}

// NormalizePhone strips whitespace, hyphens, and parentheses.
func NormalizePhone(raw string) string {
	return phoneFormattingRe.ReplaceAllString(raw, "")
}

// ValidatePhone reports whether raw is an international-dialing-style number
// after formatting characters are stripped: an optional leading '+', a first
// digit of 1-9, and at most 15 digits total.
func ValidatePhone(raw string) bool {
	return phoneRe.MatchString(NormalizePhone(raw))
}

// Normalize applies the flow's canonical normalization.
func Normalize(raw string, flow Flow) string {
	if flow == FlowPhone {
		return NormalizePhone(raw)
	}
	return NormalizeEmail(raw)
}

// Validate applies the flow's format check.
func Validate(raw string, flow Flow) bool {
	if flow == FlowPhone {
		return ValidatePhone(raw)
	}
	return ValidateEmail(raw)
}

// FormatPhoneForDisplay renders a phone number for UI display, grouping the
// digits as XXX XXX XXXX. Cosmetic only: the result must never feed
// derivation, that is what NormalizePhone is for.
func FormatPhoneForDisplay(raw string) string {
	d := nonDigitRe.ReplaceAllString(raw, "")
	switch {
	case len(d) <= 3:
		return d
	case len(d) <= 6:
		return d[:3] + " " + d[3:]
	default:
		if len(d) > 10 {
			d = d[:10]
		}
		return d[:3] + " " + d[3:6] + " " + d[6:]
	}
}
