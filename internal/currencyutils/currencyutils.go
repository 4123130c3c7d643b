// Package currencyutils provides amount parsing and formatting shared by all
// dialect parsers. Source files use a comma as decimal separator, optionally
// with dots as thousands separators; the ledger output uses a comma-decimal
// two-digit format split into a credit/debit pair.
package currencyutils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"mhofer/bank2ledger/internal/models"
)

// ParseAmount parses a continental-format amount string such as "1.234,56"
// or "-12,30". Thousands dots are stripped and the decimal comma is
// normalized before parsing.
func ParseAmount(s string) (decimal.Decimal, error) {
	normalized := strings.TrimSpace(s)
	normalized = strings.ReplaceAll(normalized, ".", "")
	normalized = strings.ReplaceAll(normalized, ",", ".")

	value, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return value, nil
}

// FormatAmount renders an amount with exactly two fraction digits and a
// comma as decimal separator, without sign or thousands separators.
func FormatAmount(v decimal.Decimal) string {
	return strings.ReplaceAll(v.StringFixed(2), ".", ",")
}

// SplitCreditDebit converts a signed amount into the ledger credit/debit
// pair. Negative and zero amounts land on the debit side, positive amounts
// on the credit side; the other side is always "0,00".
func SplitCreditDebit(v decimal.Decimal) (credit, debit string) {
	if v.IsPositive() {
		return FormatAmount(v), models.ZeroAmount
	}
	return models.ZeroAmount, FormatAmount(v.Abs())
}
