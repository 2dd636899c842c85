// Package main is the entry point for the bmi binary. All of the work is
// done by the cobra commands in internal/cli.
//
// Build metadata lives in the cli package and is set with ldflags, e.g.:
//
//	go build -ldflags "-X github.com/dlfelps/bmi-calculator/internal/cli.Version=1.0.0" ./cmd/bmi
package main

import (
	"os"

	"github.com/dlfelps/bmi-calculator/internal/cli"
)

func main() {
	os.Exit(cli.Execute(cli.NewRootCommand()))
}
