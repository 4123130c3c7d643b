package paypalparser

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const paypalHeader = "\"Datum\",\"Uhrzeit\",\"Zeitzone\",\"Name\",\"Typ\",\"Status\",\"Währung\",\"Brutto\"\n"

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestParseFile(t *testing.T) {
	fixture := paypalHeader +
		"\"01.04.2020\",\"10:15:00\",\"CEST\",\"Max Mustermann\",\"Zahlung\",\"Abgeschlossen\",\"EUR\",\"-9,99\"\n" +
		"\"02.04.2020\",\"11:00:00\",\"CEST\",\"Erika Musterfrau\",\"Gutschrift\",\"Abgeschlossen\",\"EUR\",\"25,00\"\n"

	records, err := ParseFile(writeFixture(t, "Download.CSV", fixture))
	require.NoError(t, err)
	require.Len(t, records, 2, "header row is skipped")

	first := records[0]
	assert.Equal(t, "", first.SequenceNumber)
	assert.Equal(t, time.Date(2020, 4, 1, 0, 0, 0, 0, time.UTC), first.Date)
	assert.Equal(t, "Max Mustermann", first.Description)
	assert.Equal(t, "0,00", first.Credit)
	assert.Equal(t, "9,99", first.Debit)

	second := records[1]
	assert.Equal(t, time.Date(2020, 4, 2, 0, 0, 0, 0, time.UTC), second.Date)
	assert.Equal(t, "Erika Musterfrau", second.Description)
	assert.Equal(t, "25,00", second.Credit)
	assert.Equal(t, "0,00", second.Debit)
}

func TestParseFile_Windows1252Description(t *testing.T) {
	// ü is the Windows-1252 byte 0xFC.
	fixture := paypalHeader +
		"\"01.04.2020\",\"10:15:00\",\"CEST\",\"M\xfcller GmbH\",\"Zahlung\",\"Abgeschlossen\",\"EUR\",\"-5,00\"\n"

	records, err := ParseFile(writeFixture(t, "Download.CSV", fixture))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Müller GmbH", records[0].Description)
}

func TestSplitFields(t *testing.T) {
	fields := splitFields("\"01.04.2020\",\"10:15:00\",\"CEST\",\"Max\",\"T\",\"S\",\"EUR\",\"-9,99\"")
	// Separator commas and single-character fragments are dropped.
	assert.Equal(t, []string{"01.04.2020", "10:15:00", "CEST", "Max", "EUR", "-9,99"}, fields)
}

func TestParseFile_TooFewFields(t *testing.T) {
	fixture := paypalHeader + "\"01.04.2020\",\"10:15:00\"\n"
	_, err := ParseFile(writeFixture(t, "Download.CSV", fixture))
	assert.Error(t, err)
}
