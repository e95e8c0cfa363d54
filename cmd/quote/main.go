// Package main is the entry point for the offline quote CLI.
package main

import (
	"os"

	"casual-leasing/cmd/quote/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
