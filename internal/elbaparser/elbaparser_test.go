package elbaparser

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mhofer/bank2ledger/internal/parsererror"
)

// Fixture rows in ISO-8859-1: ä is the byte 0xE4. Every ELBA row ends with a
// dangling semicolon.
const elbaFixture = "01.03.2020;\"Billa   Dankt  Filiale\";VD;-12,50;\n" +
	"02.03.2020;\"Gehalt M\xe4rz\";VD;1500,00;\n"

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestParseFile(t *testing.T) {
	records, err := ParseFile(writeFixture(t, "elba-export.csv", elbaFixture))
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "", first.SequenceNumber)
	assert.Equal(t, time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC), first.Date)
	assert.Equal(t, "Billa Dankt Filiale", first.Description, "quotes stripped, whitespace collapsed")
	assert.Equal(t, "0,00", first.Credit)
	assert.Equal(t, "12,50", first.Debit)

	second := records[1]
	assert.Equal(t, time.Date(2020, 3, 2, 0, 0, 0, 0, time.UTC), second.Date)
	assert.Equal(t, "Gehalt März", second.Description, "Latin-1 umlaut decoded")
	assert.Equal(t, "1500,00", second.Credit)
	assert.Equal(t, "0,00", second.Debit)
}

func TestParseFile_MalformedDate(t *testing.T) {
	_, err := ParseFile(writeFixture(t, "elba-bad.csv", "2020-03-01;\"Desc\";VD;-1,00;\n"))
	require.Error(t, err)

	var parseErr *parsererror.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "date", parseErr.Field)
	assert.Equal(t, 1, parseErr.Line)
}

func TestParseFile_MalformedAmount(t *testing.T) {
	_, err := ParseFile(writeFixture(t, "elba-bad.csv", "01.03.2020;\"Desc\";VD;abc;\n"))
	require.Error(t, err)

	var parseErr *parsererror.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "amount", parseErr.Field)
}

func TestParseFile_TooFewFields(t *testing.T) {
	_, err := ParseFile(writeFixture(t, "elba-bad.csv", "01.03.2020;\"Desc\";\n"))
	require.Error(t, err)

	var parseErr *parsererror.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "row", parseErr.Field)
}

func TestConvertToCSV_EndToEnd(t *testing.T) {
	inputFile := writeFixture(t, "elba-export.csv", elbaFixture)
	outputFile := filepath.Join(t.TempDir(), "ledger.csv")

	require.NoError(t, ConvertToCSV(inputFile, outputFile))

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)

	// Dates are reformatted from DD.MM.YYYY to YYYY.MM.DD, the negative
	// amount lands in the debit column, the positive one in credit.
	assert.Equal(t, "\"\",\"2020.03.01\",\"Billa Dankt Filiale\",\"0,00\",\"12,50\"", lines[0])
	assert.Equal(t, "\"\",\"2020.03.02\",\"Gehalt M\xe4rz\",\"1500,00\",\"0,00\"", lines[1])
}

func TestConvertToCSV_AbortsWithoutOutput(t *testing.T) {
	inputFile := writeFixture(t, "elba-bad.csv", "not a valid row\n")
	outputFile := filepath.Join(t.TempDir(), "ledger.csv")

	require.Error(t, ConvertToCSV(inputFile, outputFile))
	_, err := os.Stat(outputFile)
	assert.True(t, os.IsNotExist(err), "no partial output on parse failure")
}
