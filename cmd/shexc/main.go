// Package main provides the shexc command line tool.
package main

import (
	"os"

	"github.com/leapstack-labs/shexc/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
