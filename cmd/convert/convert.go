// Package convert handles the auto-detecting conversion command.
package convert

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"mhofer/bank2ledger/cmd/root"
	"mhofer/bank2ledger/internal/dialect"
	"mhofer/bank2ledger/internal/easybankparser"
	"mhofer/bank2ledger/internal/elbaparser"
	"mhofer/bank2ledger/internal/fileutils"
	"mhofer/bank2ledger/internal/livebankparser"
	"mhofer/bank2ledger/internal/parsererror"
	"mhofer/bank2ledger/internal/paypalparser"
)

// Cmd represents the convert command
var Cmd = &cobra.Command{
	Use:   "convert <input> <output>",
	Short: "Detect the bank dialect from the file name and convert",
	Long: `Convert a bank CSV export to the ledger format. The dialect is selected
from the input file name; an unrecognized name is reported and no output
file is written.`,
	Args: cobra.ExactArgs(2),
	Run:  convertFunc,
}

func convertFunc(cmd *cobra.Command, args []string) {
	if err := run(args[0], args[1]); err != nil {
		root.Log.Fatalf("Error converting to CSV: %v", err)
	}
}

// run converts inputFile to outputFile. An unrecognized file name is the one
// recovered failure: the message goes to stdout, no output file is written
// and the process still exits normally.
func run(inputFile, outputFile string) error {
	if !fileutils.FileExists(inputFile) {
		return fmt.Errorf("input file does not exist: %s", inputFile)
	}

	detected, err := dialect.Detect(inputFile)
	if err != nil {
		var unknown *parsererror.UnknownFormatError
		if errors.As(err, &unknown) {
			fmt.Println(unknown.Error())
			return nil
		}
		return err
	}

	root.Log.WithField("dialect", detected.String()).Info("Detected input dialect")
	return converterFor(detected)(inputFile, outputFile)
}

func converterFor(d dialect.Dialect) func(inputFile, outputFile string) error {
	switch d {
	case dialect.PayPal:
		return paypalparser.ConvertToCSV
	case dialect.Easybank:
		return easybankparser.ConvertToCSV
	case dialect.Livebank:
		return livebankparser.ConvertToCSV
	default:
		return elbaparser.ConvertToCSV
	}
}
