// Package main is the entry point for the specreport CLI.
package main

import (
	"os"

	"github.com/AndreyAkinshin/specreport/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
