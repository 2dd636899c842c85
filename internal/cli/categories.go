package cli

import (
	"fmt"
	"io"
	"math"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/dlfelps/bmi-calculator/internal/services"
)

// categoryRow is one line of the category table.
type categoryRow struct {
	Category string  `json:"category" yaml:"category"`
	Lower    float64 `json:"lower" yaml:"lower"`
	Upper    string  `json:"upper" yaml:"upper"`
	Color    string  `json:"color" yaml:"color"`
	Emoji    string  `json:"emoji" yaml:"emoji"`
}

func newCategoriesCommand() *cobra.Command {
	var output outputOptions

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List the BMI categories and their thresholds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := output.validate(); err != nil {
				return err
			}
			rows := categoryRows()
			return output.print(cmd.OutOrStdout(), rows, func(w io.Writer) {
				printCategories(w, rows)
			})
		},
	}
	addOutputFlag(cmd, &output)

	return cmd
}

func categoryRows() []categoryRow {
	rows := make([]categoryRow, 0, len(services.Bands))
	lower := 0.0
	for _, b := range services.Bands {
		upper := "∞"
		if !math.IsInf(b.Upper, 1) {
			upper = fmt.Sprintf("%g", b.Upper)
		}
		rows = append(rows, categoryRow{
			Category: b.Category.String(),
			Lower:    lower,
			Upper:    upper,
			Color:    b.Color,
			Emoji:    b.Emoji,
		})
		lower = b.Upper
	}
	return rows
}

func printCategories(w io.Writer, rows []categoryRow) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("BMI"), bold.Sprint("Category"), bold.Sprint("Color"))
	for i, r := range rows {
		rng := fmt.Sprintf("%g ≤ bmi < %s", r.Lower, r.Upper)
		switch {
		case i == 0:
			rng = "< " + r.Upper
		case i == len(rows)-1:
			rng = fmt.Sprintf("≥ %g", r.Lower)
		}
		tbl.AddRow(rng, colorize(services.Bands[i].Category, r.Category)+" "+r.Emoji, r.Color)
	}

	_, _ = fmt.Fprintln(w, tbl)
}
