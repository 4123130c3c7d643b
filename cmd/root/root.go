// Package root contains the root command for the application
package root

import (
	"mhofer/bank2ledger/internal/common"
	"mhofer/bank2ledger/internal/config"
	"mhofer/bank2ledger/internal/easybankparser"
	"mhofer/bank2ledger/internal/elbaparser"
	"mhofer/bank2ledger/internal/livebankparser"
	"mhofer/bank2ledger/internal/paypalparser"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "bank2ledger",
		Short: "A CLI tool to convert bank CSV exports to the ledger format.",
		Long: `bank2ledger converts transaction export files from ELBA, easybank,
livebank and PayPal into the normalized CSV format the ledger application reads.
The dialect is selected from the input file name.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to bank2ledger!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize and configure logging
			config.LoadEnv()
			Log = config.ConfigureLogging()

			// Set the configured logger for all parsers
			elbaparser.SetLogger(Log)
			easybankparser.SetLogger(Log)
			livebankparser.SetLogger(Log)
			paypalparser.SetLogger(Log)
			common.SetLogger(Log)
		},
	}

	// SharedFlags holds common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
}
