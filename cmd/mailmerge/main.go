/*
Package main provides the CLI entry point for mailmerge.
*/
package main

import (
	"os"

	"github.com/dmitrymomot/mailmerge/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
