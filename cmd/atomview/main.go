// Package main provides the atomview CLI for deriving electron configurations.
package main

import (
	"os"

	"github.com/leapstack-labs/atomview/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
