// Package inspect handles the ledger CSV summary command.
package inspect

import (
	"fmt"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"mhofer/bank2ledger/cmd/root"
	"mhofer/bank2ledger/internal/currencyutils"
	"mhofer/bank2ledger/internal/fileutils"
	"mhofer/bank2ledger/internal/models"
)

// Cmd represents the inspect command
var Cmd = &cobra.Command{
	Use:   "inspect",
	Short: "Summarize a normalized ledger CSV",
	Long:  `Read a converted ledger CSV back and report row count and credit/debit totals.`,
	Run:   inspectFunc,
}

// Summary holds the aggregate values of one ledger CSV file.
type Summary struct {
	Rows   int
	Credit decimal.Decimal
	Debit  decimal.Decimal
}

func inspectFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Input == "" {
		root.Log.Fatal("--input must be provided")
	}

	summary, err := Summarize(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Error inspecting ledger CSV: %v", err)
	}

	root.Log.WithFields(logrus.Fields{
		"file":   root.SharedFlags.Input,
		"rows":   summary.Rows,
		"credit": currencyutils.FormatAmount(summary.Credit),
		"debit":  currencyutils.FormatAmount(summary.Debit),
	}).Info("Ledger summary")
}

// Summarize reads a normalized ledger CSV and aggregates its rows. The file
// is headerless and Latin-1 encoded, as written by the converter.
func Summarize(filePath string) (Summary, error) {
	file, err := fileutils.OpenFile(filePath)
	if err != nil {
		return Summary{}, err
	}
	defer func() {
		if err := file.Close(); err != nil {
			root.Log.WithError(err).Warn("Failed to close file")
		}
	}()

	var rows []models.LedgerRow
	reader := transform.NewReader(file, charmap.ISO8859_1.NewDecoder())
	if err := gocsv.UnmarshalWithoutHeaders(reader, &rows); err != nil {
		return Summary{}, fmt.Errorf("error reading ledger CSV: %w", err)
	}

	summary := Summary{Rows: len(rows), Credit: decimal.Zero, Debit: decimal.Zero}
	for _, row := range rows {
		credit, err := currencyutils.ParseAmount(row.Credit)
		if err != nil {
			return Summary{}, fmt.Errorf("invalid credit amount in row: %w", err)
		}
		debit, err := currencyutils.ParseAmount(row.Debit)
		if err != nil {
			return Summary{}, fmt.Errorf("invalid debit amount in row: %w", err)
		}
		summary.Credit = summary.Credit.Add(credit)
		summary.Debit = summary.Debit.Add(debit)
	}

	return summary, nil
}
