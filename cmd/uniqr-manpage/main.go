package main

import (
	"os"

	"github.com/arthur-debert/uniqr/cmd/uniqr"
)

func main() {
	if err := uniqr.GenManPage(os.Stdout); err != nil {
		os.Exit(uniqr.ReportError(os.Stderr, err))
	}
}
