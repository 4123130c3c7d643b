// Package easybank handles easybank statement conversion commands
package easybank

import (
	"mhofer/bank2ledger/cmd/common"
	"mhofer/bank2ledger/cmd/root"
	"mhofer/bank2ledger/internal/easybankparser"

	"github.com/spf13/cobra"
)

// Cmd represents the easybank command
var Cmd = &cobra.Command{
	Use:   "easybank",
	Short: "Convert easybank CSV to ledger CSV",
	Long:  `Convert easybank CSV exports to the ledger CSV format.`,
	Run:   easybankFunc,
}

func easybankFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("easybank convert command called")
	common.ProcessFile(easybankparser.ConvertToCSV, root.SharedFlags.Input, root.SharedFlags.Output, root.Log)
}
