// Package elbaparser provides functionality to parse ELBA CSV exports and
// convert them to the ledger format.
package elbaparser

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
	minFields  = 4
)

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
		common.SetLogger(logger)
	}
}

// ParseFile parses an ELBA CSV export and returns the normalized records.
// ELBA files are ISO-8859-1 encoded, semicolon-delimited and have no header
// row; every row ends with a dangling semicolon.
func ParseFile(filePath string) ([]models.Record, error) {
	log.WithField("file", filePath).Info("Parsing ELBA CSV file")

	lines, err := common.ReadLines(filePath, dialect.Elba.Encoding())
	if err != nil {
		return nil, fmt.Errorf("error reading ELBA file: %w", err)
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

	log.WithField("count", len(records)).Info("Successfully parsed ELBA CSV file")
	return records, nil
}

func parseLine(line string, lineNo int) (models.Record, error) {
	fields := strings.Split(line, ";")
	// The trailing semicolon produces one empty field that carries no data.
	if fields[len(fields)-1] == "" {
		fields = fields[:len(fields)-1]
	}
	if len(fields) < minFields {
		return models.Record{}, &parsererror.ParseError{
			Dialect: dialect.Elba.String(),
			Line:    lineNo,
			Field:   "row",
			Value:   line,
			Err:     fmt.Errorf("expected at least %d fields, got %d", minFields, len(fields)),
		}
	}

	date, err := time.Parse(dateLayout, fields[0])
	if err != nil {
		return models.Record{}, &parsererror.ParseError{
			Dialect: dialect.Elba.String(),
			Line:    lineNo,
			Field:   "date",
			Value:   fields[0],
			Err:     err,
		}
	}

	amount, err := currencyutils.ParseAmount(fields[3])
	if err != nil {
		return models.Record{}, &parsererror.ParseError{
			Dialect: dialect.Elba.String(),
			Line:    lineNo,
			Field:   "amount",
			Value:   fields[3],
			Err:     err,
		}
	}
	credit, debit := currencyutils.SplitCreditDebit(amount)

	description := common.CollapseWhitespace(strings.Trim(fields[1], `"`))

	return models.Record{
		SequenceNumber: "",
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

// ConvertToCSV converts an ELBA CSV export to the ledger CSV format.
func ConvertToCSV(inputFile, outputFile string) error {
	return common.GeneralizedConvertToCSV(inputFile, outputFile, ParseFile)
}
