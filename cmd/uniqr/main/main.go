package main

import (
	"os"

	"github.com/arthur-debert/uniqr/cmd/uniqr"
)

func main() {
	rootCmd := uniqr.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(uniqr.ReportError(os.Stderr, err))
	}
}
