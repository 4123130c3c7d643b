// Package common contains shared functionality for command handlers
package common

import (
	"mhofer/bank2ledger/internal/fileutils"

	"github.com/sirupsen/logrus"
)

// ProcessFile runs a single conversion using the given convert function,
// checking the input and output arguments first. All failures are fatal at
// the command boundary.
func ProcessFile(convert func(inputFile, outputFile string) error, inputFile, outputFile string, log *logrus.Logger) {
	if inputFile == "" || outputFile == "" {
		log.Fatal("Both --input and --output must be provided")
	}
	if !fileutils.FileExists(inputFile) {
		log.Fatalf("Input file does not exist: %s", inputFile)
	}

	if err := convert(inputFile, outputFile); err != nil {
		log.Fatalf("Error converting to CSV: %v", err)
	}
	log.Info("Conversion completed successfully!")
}
