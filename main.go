package main

import (
	"fmt"
	"os"
	"path/filepath"

	"mhofer/bank2ledger/cmd/convert"
	"mhofer/bank2ledger/cmd/easybank"
	"mhofer/bank2ledger/cmd/elba"
	"mhofer/bank2ledger/cmd/inspect"
	"mhofer/bank2ledger/cmd/livebank"
	"mhofer/bank2ledger/cmd/paypal"
	"mhofer/bank2ledger/cmd/root"

	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables silently before any logging is configured.
	loadEnvSilently()

	root.Init()

	root.Cmd.AddCommand(convert.Cmd)
	root.Cmd.AddCommand(elba.Cmd)
	root.Cmd.AddCommand(easybank.Cmd)
	root.Cmd.AddCommand(livebank.Cmd)
	root.Cmd.AddCommand(paypal.Cmd)
	root.Cmd.AddCommand(inspect.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}

	_ = godotenv.Load(envFile)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
