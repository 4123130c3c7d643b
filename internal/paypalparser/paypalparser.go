// Package paypalparser provides functionality to parse PayPal CSV exports
// and convert them to the ledger format.
package paypalparser

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"mhofer/bank2ledger/internal/common"
	"mhofer/bank2ledger/internal/currencyutils"
	"mhofer/bank2ledger/internal/dialect"
	"mhofer/bank2ledger/internal/models"
	"mhofer/bank2ledger/internal/parsererror"
)

var log = logrus.New()

const (
	dateLayout = "02.01.2006"
	minFields  = 8
)

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
		common.SetLogger(logger)
	}
}

// ParseFile parses a PayPal CSV export and returns the normalized records.
// PayPal files are Windows-1252 encoded and quote every field, so rows are
// split on the quote character; the fragments between closing and opening
// quotes are the separators and are discarded along with empty fragments.
func ParseFile(filePath string) ([]models.Record, error) {
	log.WithField("file", filePath).Info("Parsing PayPal CSV file")

	lines, err := common.ReadLines(filePath, dialect.PayPal.Encoding())
	if err != nil {
		return nil, fmt.Errorf("error reading PayPal file: %w", err)
	}

	records := make([]models.Record, 0, len(lines))
	for i, line := range lines {
		if i == 0 || strings.TrimSpace(line) == "" {
			continue
		}
		record, err := parseLine(line, i+1)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	log.WithField("count", len(records)).Info("Successfully parsed PayPal CSV file")
	return records, nil
}

// splitFields breaks a quote-delimited row into its field values. Fragments
// shorter than two characters are separators or artifacts, not data.
func splitFields(line string) []string {
	var fields []string
	for _, fragment := range strings.Split(line, `"`) {
		if len(fragment) < 2 {
			continue
		}
		fields = append(fields, fragment)
	}
	return fields
}

func parseLine(line string, lineNo int) (models.Record, error) {
	fields := splitFields(line)
	if len(fields) < minFields {
		return models.Record{}, &parsererror.ParseError{
			Dialect: dialect.PayPal.String(),
			Line:    lineNo,
			Field:   "row",
			Value:   line,
			Err:     fmt.Errorf("expected at least %d fields, got %d", minFields, len(fields)),
		}
	}

	date, err := time.Parse(dateLayout, fields[0])
	if err != nil {
		return models.Record{}, &parsererror.ParseError{
			Dialect: dialect.PayPal.String(),
			Line:    lineNo,
			Field:   "date",
			Value:   fields[0],
			Err:     err,
		}
	}

	amount, err := currencyutils.ParseAmount(fields[7])
	if err != nil {
		return models.Record{}, &parsererror.ParseError{
			Dialect: dialect.PayPal.String(),
			Line:    lineNo,
			Field:   "amount",
			Value:   fields[7],
			Err:     err,
		}
	}
	credit, debit := currencyutils.SplitCreditDebit(amount)

	return models.Record{
		SequenceNumber: "",
		Date:           date,
		Description:    fields[3],
		Credit:         credit,
		Debit:          debit,
	}, nil
}

// WriteToCSV writes records to a ledger CSV file.
func WriteToCSV(records []models.Record, csvFile string) error {
	return common.WriteRecordsToCSV(records, csvFile)
}

// ConvertToCSV converts a PayPal CSV export to the ledger CSV format.
func ConvertToCSV(inputFile, outputFile string) error {
	return common.GeneralizedConvertToCSV(inputFile, outputFile, ParseFile)
}
