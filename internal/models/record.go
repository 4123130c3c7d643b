// Package models defines the normalized transaction record shared by all
// dialect parsers and the ledger CSV writer.
package models

import "time"

// OutputDateLayout is the date format used in the ledger CSV.
const OutputDateLayout = "2006.01.02"

// ZeroAmount is the formatted zero value used on the empty side of the
// credit/debit pair.
const ZeroAmount = "0,00"

// Record represents one normalized transaction. Every field has a declared
// default (empty string, zero date) and is set deliberately at construction;
// exactly one of Credit/Debit is non-zero, both are always formatted with two
// fraction digits and a comma separator.
type Record struct {
	SequenceNumber string    // optional booking reference, "" when absent
	Date           time.Time // booking date
	Description    string
	Credit         string // "ddd,dd"
	Debit          string // "ddd,dd"
}

// FormatDate renders the record date in the ledger output layout.
func (r Record) FormatDate() string {
	return r.Date.Format(OutputDateLayout)
}

// LedgerRow represents one written line of the ledger CSV. It mirrors the
// Record column order and is used to read normalized files back with gocsv.
type LedgerRow struct {
	SequenceNumber string `csv:"sequence_number"`
	Date           string `csv:"date"`
	Description    string `csv:"description"`
	Credit         string `csv:"credit"`
	Debit          string `csv:"debit"`
}
