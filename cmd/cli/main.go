// Package main is the entry point for the scanquote CLI.
package main

import (
	"os"

	"scanquote/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
