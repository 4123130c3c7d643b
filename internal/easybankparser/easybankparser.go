// Package easybankparser provides functionality to parse easybank CSV
// exports and convert them to the ledger format. Besides the row layout it
// handles easybank's freeform description field, which interleaves booking
// references, IBAN/BIC pairs and legacy account numbers with the actual
// transaction text.
package easybankparser

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
	minFields  = 5
)

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
		common.SetLogger(logger)
	}
}

// ParseFile parses an easybank CSV export and returns the normalized
// records. easybank files are ISO-8859-1 encoded, semicolon-delimited and
// have no header row.
func ParseFile(filePath string) ([]models.Record, error) {
	log.WithField("file", filePath).Info("Parsing easybank CSV file")

	lines, err := common.ReadLines(filePath, dialect.Easybank.Encoding())
	if err != nil {
		return nil, fmt.Errorf("error reading easybank file: %w", err)
	}

	records := make([]models.Record, 0, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		record, err := parseLine(line, i+1)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	log.WithField("count", len(records)).Info("Successfully parsed easybank CSV file")
	return records, nil
}

func parseLine(line string, lineNo int) (models.Record, error) {
	fields := strings.Split(line, ";")
	if len(fields) < minFields {
		return models.Record{}, &parsererror.ParseError{
			Dialect: dialect.Easybank.String(),
			Line:    lineNo,
			Field:   "row",
			Value:   line,
			Err:     fmt.Errorf("expected at least %d fields, got %d", minFields, len(fields)),
		}
	}

	date, err := time.Parse(dateLayout, fields[2])
	if err != nil {
		return models.Record{}, &parsererror.ParseError{
			Dialect: dialect.Easybank.String(),
			Line:    lineNo,
			Field:   "date",
			Value:   fields[2],
			Err:     err,
		}
	}

	amount, err := currencyutils.ParseAmount(fields[4])
	if err != nil {
		return models.Record{}, &parsererror.ParseError{
			Dialect: dialect.Easybank.String(),
			Line:    lineNo,
			Field:   "amount",
			Value:   fields[4],
			Err:     err,
		}
	}
	credit, debit := currencyutils.SplitCreditDebit(amount)

	description, reference := ExtractDescription(fields[1])

	return models.Record{
		SequenceNumber: reference,
		Date:           date,
		Description:    description,
		Credit:         credit,
		Debit:          debit,
	}, nil
}

// WriteToCSV writes records to a ledger CSV file.
func WriteToCSV(records []models.Record, csvFile string) error {
	return common.WriteRecordsToCSV(records, csvFile)
}

// ConvertToCSV converts an easybank CSV export to the ledger CSV format.
func ConvertToCSV(inputFile, outputFile string) error {
	return common.GeneralizedConvertToCSV(inputFile, outputFile, ParseFile)
}
