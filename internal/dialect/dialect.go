// Package dialect identifies which bank/provider export format a file
// belongs to and carries the per-dialect character encoding configuration.
package dialect

import (
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"mhofer/bank2ledger/internal/parsererror"
)

// Dialect is one of the supported bank export formats.
type Dialect int

const (
	Unknown Dialect = iota
	PayPal
	Easybank
	Livebank
	Elba
)

// File naming conventions used for detection. PayPal exports always download
// under a fixed name; the other providers embed their name in the file path.
const (
	paypalSuffix   = "Download.CSV"
	easybankMarker = "easybank"
	livebankMarker = "livebank"
	elbaMarker     = "elba"
)

// String returns the provider name for logging and error messages.
func (d Dialect) String() string {
	switch d {
	case PayPal:
		return "paypal"
	case Easybank:
		return "easybank"
	case Livebank:
		return "livebank"
	case Elba:
		return "elba"
	default:
		return "unknown"
	}
}

// Encoding returns the character encoding the dialect's export files are
// written in. A nil encoding means UTF-8 and needs no decoding step.
func (d Dialect) Encoding() encoding.Encoding {
	switch d {
	case Elba, Easybank:
		return charmap.ISO8859_1
	case PayPal:
		return charmap.Windows1252
	default:
		return nil
	}
}

// Detect selects the dialect for an input file from its path. Matching is by
// naming convention, not content sniffing, and the priority order is fixed:
// the PayPal suffix wins over any embedded provider marker.
func Detect(path string) (Dialect, error) {
	switch {
	case strings.HasSuffix(path, paypalSuffix):
		return PayPal, nil
	case strings.Contains(path, easybankMarker):
		return Easybank, nil
	case strings.Contains(path, livebankMarker):
		return Livebank, nil
	case strings.Contains(path, elbaMarker):
		return Elba, nil
	default:
		return Unknown, &parsererror.UnknownFormatError{FilePath: path}
	}
}
