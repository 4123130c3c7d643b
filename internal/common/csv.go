// Package common provides shared functionality across the dialect parsers:
// encoded file reading, text cleanup, and the ledger CSV writer.
package common

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"mhofer/bank2ledger/internal/fileutils"
	"mhofer/bank2ledger/internal/models"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// CollapseWhitespace replaces runs of whitespace with single spaces and
// trims the ends.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

// StripQuotes removes all double-quote characters from a field.
func StripQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, "")
}

// ReadLines reads a whole file through the given character encoding and
// returns its lines. A nil encoding means the file is already UTF-8.
// Windows line endings are normalized and the empty fragment after a final
// newline is dropped.
func ReadLines(filePath string, enc encoding.Encoding) ([]string, error) {
	log.WithField("file", filePath).Debug("Reading input file")

	file, err := fileutils.OpenFile(filePath)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	var reader io.Reader = file
	if enc != nil {
		reader = transform.NewReader(file, enc.NewDecoder())
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	log.WithField("count", len(lines)).Debug("Read input lines")
	return lines, nil
}

// WriteRecordsToCSV writes normalized records to the ledger CSV file. Every
// field is quote-wrapped, fields are comma-separated, the text is encoded as
// ISO-8859-1 so non-ASCII characters survive the target application's
// 8-bit reader. An existing output file is overwritten.
func WriteRecordsToCSV(records []models.Record, csvFile string) error {
	if records == nil {
		return fmt.Errorf("cannot write nil records to CSV")
	}

	log.WithFields(logrus.Fields{
		"file":  csvFile,
		"count": len(records),
	}).Info("Writing records to ledger CSV")

	file, err := fileutils.CreateFile(csvFile)
	if err != nil {
		return err
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	writer := transform.NewWriter(file, charmap.ISO8859_1.NewEncoder())
	for _, record := range records {
		line := formatLedgerLine(record)
		if _, err := writer.Write([]byte(line)); err != nil {
			return fmt.Errorf("error writing CSV data: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("error flushing CSV data: %w", err)
	}

	log.WithFields(logrus.Fields{
		"file":  csvFile,
		"count": len(records),
	}).Info("Successfully wrote ledger CSV")
	return nil
}

// formatLedgerLine renders one record as a force-quoted CSV line. The ledger
// application expects every field quoted, so encoding/csv (which quotes only
// when necessary) is not used here.
func formatLedgerLine(record models.Record) string {
	fields := []string{
		record.SequenceNumber,
		record.FormatDate(),
		record.Description,
		record.Credit,
		record.Debit,
	}
	quoted := make([]string, len(fields))
	for i, field := range fields {
		quoted[i] = `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",") + "\n"
}

// GeneralizedConvertToCSV combines parsing and writing for a single file.
// The input is parsed completely before the output file is opened, so a
// malformed row never leaves a partial output behind.
func GeneralizedConvertToCSV(
	inputFile string,
	outputFile string,
	parseFunc func(string) ([]models.Record, error),
) error {
	log.WithFields(logrus.Fields{
		"input":  inputFile,
		"output": outputFile,
	}).Info("Converting file to ledger CSV")

	if _, err := os.Stat(inputFile); os.IsNotExist(err) {
		return fmt.Errorf("input file does not exist: %s", inputFile)
	}

	records, err := parseFunc(inputFile)
	if err != nil {
		return fmt.Errorf("error parsing file: %w", err)
	}

	if err := WriteRecordsToCSV(records, outputFile); err != nil {
		return fmt.Errorf("error writing records to CSV: %w", err)
	}

	log.WithFields(logrus.Fields{
		"input":  inputFile,
		"output": outputFile,
		"count":  len(records),
	}).Info("Successfully converted file")
	return nil
}
