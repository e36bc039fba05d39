// Package main is the entry point for the duckgo CLI.
package main

import (
	"os"

	"github.com/jmylchreest/duckgo/cmd/duckgo/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
