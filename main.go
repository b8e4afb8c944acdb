// Package main is the entry point for the issuetable CLI application.
package main

import (
	"fmt"
	"os"

	"github.com/danielolaszy/issuetable/cmd"
	"github.com/danielolaszy/issuetable/internal/logging"
)

func main() {
	logging.Debug("starting issuetable", "version", "1.0.0")

	if err := cmd.Execute(); err != nil {
		logging.Error("command execution failed", "error", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
