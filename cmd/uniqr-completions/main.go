package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/arthur-debert/uniqr/cmd/uniqr"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <%s>\n", os.Args[0], strings.Join(uniqr.Shells, "|"))
		os.Exit(1)
	}

	if err := uniqr.GenCompletion(os.Stdout, os.Args[1]); err != nil {
		os.Exit(uniqr.ReportError(os.Stderr, err))
	}
}
