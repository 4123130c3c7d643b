// Package livebank handles livebank statement conversion commands
package livebank

import (
	"mhofer/bank2ledger/cmd/common"
	"mhofer/bank2ledger/cmd/root"
	"mhofer/bank2ledger/internal/livebankparser"

	"github.com/spf13/cobra"
)

// Cmd represents the livebank command
var Cmd = &cobra.Command{
	Use:   "livebank",
	Short: "Convert livebank CSV to ledger CSV",
	Long:  `Convert livebank CSV exports to the ledger CSV format.`,
	Run:   livebankFunc,
}

func livebankFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("livebank convert command called")
	common.ProcessFile(livebankparser.ConvertToCSV, root.SharedFlags.Input, root.SharedFlags.Output, root.Log)
}
