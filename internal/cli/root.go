// Package cli implements the cobra commands of the bmi binary.
//
// Each subcommand (serve, calc, categories, version) is defined in its own
// file. This file defines the root command and error reporting.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dlfelps/bmi-calculator/internal/services"
)

// Exit codes returned by Execute.
const (
	ExitOK           = 0
	ExitGeneralError = 1
	ExitInvalidInput = 2
)

// Version, Commit, and Date are set at build time via ldflags:
//
//	-X github.com/dlfelps/bmi-calculator/internal/cli.Version=1.0.0
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	jsonErrors bool
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "bmi",
		Short: "Body Mass Index calculator",
		Long: `bmi computes Body Mass Index from weight and height and classifies the
result into a WHO-style category.

Run "bmi serve" for the web form, or "bmi calc" for a one-off calculation.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&opts.jsonErrors, "json-errors", false, "Print errors as JSON")

	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newCalcCommand())
	rootCmd.AddCommand(newCategoriesCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// Execute runs the root command and returns the process exit code.
func Execute(rootCmd *cobra.Command) int {
	err := rootCmd.Execute()
	if err == nil {
		return ExitOK
	}

	jsonErrors, _ := rootCmd.PersistentFlags().GetBool("json-errors")
	printError(rootCmd.ErrOrStderr(), jsonErrors, err)

	var invalid *services.InvalidInputError
	if errors.As(err, &invalid) {
		return ExitInvalidInput
	}
	return ExitGeneralError
}

// printError writes err to w, either as "Error: ..." or as a JSON object.
func printError(w io.Writer, asJSON bool, err error) {
	if asJSON {
		data, _ := json.Marshal(map[string]any{
			"error": map[string]string{"message": err.Error()},
		})
		fmt.Fprintln(w, string(data))
		return
	}
	_, _ = color.New(color.FgRed).Fprintf(w, "❌ Error: %v\n", err)
}
