// Package main is the entry point for the vizr terminal data visualizer.
package main

import (
	"os"

	"github.com/leapstack-labs/vizr/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
