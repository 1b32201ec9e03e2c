// Package main is the entry point for the deskshell desktop shell.
package main

import (
	"os"

	"github.com/watchfire-io/deskshell/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
