// Package livebankparser provides functionality to parse livebank CSV
// exports and convert them to the ledger format.
package livebankparser

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
	dateLayout = "2006-01-02"
	minFields  = 8
)

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
		common.SetLogger(logger)
	}
}

// ParseFile parses a livebank CSV export and returns the normalized records.
// livebank files are UTF-8, semicolon-delimited, start with a header row and
// may contain informational rows with a zero amount, which are dropped.
func ParseFile(filePath string) ([]models.Record, error) {
	log.WithField("file", filePath).Info("Parsing livebank CSV file")

	lines, err := common.ReadLines(filePath, dialect.Livebank.Encoding())
	if err != nil {
		return nil, fmt.Errorf("error reading livebank file: %w", err)
	}

	records := make([]models.Record, 0, len(lines))
	for i, line := range lines {
		if i == 0 || strings.TrimSpace(line) == "" {
			continue
		}
		record, skip, err := parseLine(line, i+1)
		if err != nil {
			return nil, err
		}
		if skip {
			continue
		}
		records = append(records, record)
	}

	log.WithField("count", len(records)).Info("Successfully parsed livebank CSV file")
	return records, nil
}

func parseLine(line string, lineNo int) (models.Record, bool, error) {
	fields := strings.Split(line, ";")
	if len(fields) < minFields {
		return models.Record{}, false, &parsererror.ParseError{
			Dialect: dialect.Livebank.String(),
			Line:    lineNo,
			Field:   "row",
			Value:   line,
			Err:     fmt.Errorf("expected at least %d fields, got %d", minFields, len(fields)),
		}
	}

	// Zero-amount rows are balance notices, not transactions.
	if fields[7] == models.ZeroAmount {
		log.WithField("line", lineNo).Debug("Skipping zero-amount row")
		return models.Record{}, true, nil
	}

	date, err := time.Parse(dateLayout, fields[3])
	if err != nil {
		return models.Record{}, false, &parsererror.ParseError{
			Dialect: dialect.Livebank.String(),
			Line:    lineNo,
			Field:   "date",
			Value:   fields[3],
			Err:     err,
		}
	}

	amount, err := currencyutils.ParseAmount(fields[7])
	if err != nil {
		return models.Record{}, false, &parsererror.ParseError{
			Dialect: dialect.Livebank.String(),
			Line:    lineNo,
			Field:   "amount",
			Value:   fields[7],
			Err:     err,
		}
	}
	credit, debit := currencyutils.SplitCreditDebit(amount)

	description := common.StripQuotes(strings.Join(fields[8:], ", "))

	return models.Record{
		SequenceNumber: "",
		Date:           date,
		Description:    description,
		Credit:         credit,
		Debit:          debit,
	}, false, nil
}

// WriteToCSV writes records to a ledger CSV file.
func WriteToCSV(records []models.Record, csvFile string) error {
	return common.WriteRecordsToCSV(records, csvFile)
}

// ConvertToCSV converts a livebank CSV export to the ledger CSV format.
func ConvertToCSV(inputFile, outputFile string) error {
	return common.GeneralizedConvertToCSV(inputFile, outputFile, ParseFile)
}
