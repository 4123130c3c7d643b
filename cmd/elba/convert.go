// Package elba handles ELBA statement conversion commands
package elba

import (
	"mhofer/bank2ledger/cmd/common"
	"mhofer/bank2ledger/cmd/root"
	"mhofer/bank2ledger/internal/elbaparser"

	"github.com/spf13/cobra"
)

// Cmd represents the elba command
var Cmd = &cobra.Command{
	Use:   "elba",
	Short: "Convert ELBA CSV to ledger CSV",
	Long:  `Convert ELBA CSV exports to the ledger CSV format.`,
	Run:   elbaFunc,
}

func elbaFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("ELBA convert command called")
	common.ProcessFile(elbaparser.ConvertToCSV, root.SharedFlags.Input, root.SharedFlags.Output, root.Log)
}
