// Package paypal handles PayPal statement conversion commands
package paypal

import (
	"mhofer/bank2ledger/cmd/common"
	"mhofer/bank2ledger/cmd/root"
	"mhofer/bank2ledger/internal/paypalparser"

	"github.com/spf13/cobra"
)

// Cmd represents the paypal command
var Cmd = &cobra.Command{
	Use:   "paypal",
	Short: "Convert PayPal CSV to ledger CSV",
	Long:  `Convert PayPal CSV exports to the ledger CSV format.`,
	Run:   paypalFunc,
}

func paypalFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("PayPal convert command called")
	common.ProcessFile(paypalparser.ConvertToCSV, root.SharedFlags.Input, root.SharedFlags.Output, root.Log)
}
