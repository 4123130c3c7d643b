package easybankparser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"mhofer/bank2ledger/internal/common"
)

// Credit-card sub-account rows carry a pipe-separated description; giro
// rows embed a booking reference of the form "AB/123456789" followed by an
// optional payer section.
var (
	bookingRefPattern = regexp.MustCompile(`[A-Z]{2}/(\d{9})`)

	// BIC (six letters, two alphanumerics, optional branch suffix), then an
	// IBAN-like code, then the payer free text.
	ibanBicPattern = regexp.MustCompile(`^\s*([A-Z]{6}[A-Z0-9]{2}\S*)\s+([A-Z]{2}\d{10,34})\s+(.*)$`)

	// Pre-IBAN account notation: bank code (5+ digits) and account number
	// (6+ digits), with the vendor name on either side.
	legacyAccountPattern = regexp.MustCompile(`^\s*(.*?)\s*(\d{5,})\s+(\d{6,})\s*(.*?)\s*$`)
)

// giroKind tags the recognized shapes of the giro description suffix.
type giroKind int

const (
	giroPlain giroKind = iota
	giroIbanBic
	giroLegacy
	giroUnrecognized
)

// giroDetail carries only the fields its kind guarantees.
type giroDetail struct {
	kind   giroKind
	prefix string

	// giroIbanBic
	bic      string
	iban     string
	freeText string

	// giroLegacy
	bankCode      string
	accountNumber string
	vendor        string
}

// ExtractDescription turns easybank's raw description field into a clean
// human-readable description and, for giro rows, the booking reference
// number with leading zeros stripped. When neither the credit-card nor any
// giro shape is recognized the raw field is used verbatim, after a warning.
func ExtractDescription(raw string) (description, reference string) {
	if strings.Contains(raw, "|") {
		description = extractCardDescription(raw)
	} else if loc := bookingRefPattern.FindStringSubmatchIndex(raw); loc != nil {
		digits := raw[loc[2]:loc[3]]
		number, err := strconv.Atoi(digits)
		if err == nil {
			reference = strconv.Itoa(number)
		}

		prefix := raw[:loc[0]]
		suffix := raw[loc[1]:]
		description = renderGiro(classifyGiro(prefix, suffix))
	}

	if description == "" {
		log.WithField("description", raw).Warn("Unrecognized description shape, using raw text")
		description = raw
	}

	return common.CollapseWhitespace(description), reference
}

// extractCardDescription handles the credit-card sub-account shapes:
// "Shop|City" and "Shop|City|Detail". Any other segment count is left to
// the raw-text fallback.
func extractCardDescription(raw string) string {
	segments := strings.Split(raw, "|")
	switch len(segments) {
	case 2:
		return fmt.Sprintf("%s (%s)", segments[0], segments[1])
	case 3:
		return fmt.Sprintf("%s - %s (%s)", segments[0], segments[1], segments[2])
	default:
		return ""
	}
}

// classifyGiro inspects the text after the booking reference and returns the
// matching tagged variant.
func classifyGiro(prefix, suffix string) giroDetail {
	if strings.TrimSpace(suffix) == "" {
		return giroDetail{kind: giroPlain, prefix: prefix}
	}

	if m := ibanBicPattern.FindStringSubmatch(suffix); m != nil {
		return giroDetail{
			kind:     giroIbanBic,
			prefix:   prefix,
			bic:      m[1],
			iban:     m[2],
			freeText: m[3],
		}
	}

	if m := legacyAccountPattern.FindStringSubmatch(suffix); m != nil {
		vendor := m[1]
		if vendor == "" {
			vendor = m[4]
		}
		return giroDetail{
			kind:          giroLegacy,
			prefix:        prefix,
			bankCode:      m[2],
			accountNumber: m[3],
			vendor:        vendor,
		}
	}

	return giroDetail{kind: giroUnrecognized}
}

func renderGiro(detail giroDetail) string {
	switch detail.kind {
	case giroPlain:
		return detail.prefix
	case giroIbanBic:
		return fmt.Sprintf("%s: %s (%s %s)",
			strings.TrimSpace(detail.prefix), detail.freeText, detail.iban, detail.bic)
	case giroLegacy:
		return fmt.Sprintf("%s: %s (%s %s)",
			strings.TrimSpace(detail.prefix), detail.vendor, detail.accountNumber, detail.bankCode)
	default:
		return ""
	}
}
