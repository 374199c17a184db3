// Package main is the entry point for the sqltrace CLI tool.
package main

import (
	"os"

	"github.com/ktsuji/sqltrace/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
