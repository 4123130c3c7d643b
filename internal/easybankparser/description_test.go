package easybankparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractDescription_Card(t *testing.T) {
	description, reference := ExtractDescription("Shop|Vienna")
	assert.Equal(t, "Shop (Vienna)", description)
	assert.Equal(t, "", reference)

	description, reference = ExtractDescription("Shop|Vienna|ATM")
	assert.Equal(t, "Shop - Vienna (ATM)", description)
	assert.Equal(t, "", reference)
}

func TestExtractDescription_CardCollapsesWhitespace(t *testing.T) {
	description, _ := ExtractDescription("Shop  Name|Vienna")
	assert.Equal(t, "Shop Name (Vienna)", description)
}

func TestExtractDescription_CardUnexpectedSegments(t *testing.T) {
	// Four pipe segments match no card shape; the raw text is kept.
	description, reference := ExtractDescription("A|B|C|D")
	assert.Equal(t, "A|B|C|D", description)
	assert.Equal(t, "", reference)
}

func TestExtractDescription_GiroReferenceNumber(t *testing.T) {
	// Leading zeros of the nine-digit reference are normalized away.
	description, reference := ExtractDescription("Dauerauftrag AB/000012345")
	assert.Equal(t, "Dauerauftrag", description)
	assert.Equal(t, "12345", reference)
}

func TestExtractDescription_GiroBlankSuffix(t *testing.T) {
	description, reference := ExtractDescription("Gutschrift AB/123456789   ")
	assert.Equal(t, "Gutschrift", description)
	assert.Equal(t, "123456789", reference)
}

func TestExtractDescription_GiroIbanBic(t *testing.T) {
	raw := "Gutschrift Überweisung AB/123456789 BKAUATWWXXX AT121234567890123456 Max Mustermann"
	description, reference := ExtractDescription(raw)
	assert.Equal(t, "Gutschrift Überweisung: Max Mustermann (AT121234567890123456 BKAUATWWXXX)", description)
	assert.Equal(t, "123456789", reference)
}

func TestExtractDescription_GiroLegacyLeadingVendor(t *testing.T) {
	raw := "Lastschrift AB/123456789 Stadtwerke 12345 6789012"
	description, reference := ExtractDescription(raw)
	assert.Equal(t, "Lastschrift: Stadtwerke (6789012 12345)", description)
	assert.Equal(t, "123456789", reference)
}

func TestExtractDescription_GiroLegacyTrailingVendor(t *testing.T) {
	raw := "Lastschrift AB/123456789 54321 987654 Versicherung"
	description, reference := ExtractDescription(raw)
	assert.Equal(t, "Lastschrift: Versicherung (987654 54321)", description)
	assert.Equal(t, "123456789", reference)
}

func TestExtractDescription_GiroUnrecognizedSuffix(t *testing.T) {
	// A suffix matching neither the IBAN/BIC nor the legacy shape falls
	// back to the raw field; the reference is still extracted.
	raw := "Zahlung AB/123456789 xx"
	description, reference := ExtractDescription(raw)
	assert.Equal(t, "Zahlung AB/123456789 xx", description)
	assert.Equal(t, "123456789", reference)
}

func TestExtractDescription_NoKnownShape(t *testing.T) {
	description, reference := ExtractDescription("Plain  payment text")
	assert.Equal(t, "Plain payment text", description)
	assert.Equal(t, "", reference)
}
