package cli

import (
	"fmt"
	"io"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/dlfelps/bmi-calculator/internal/models"
	"github.com/dlfelps/bmi-calculator/internal/services"
)

type calcOptions struct {
	weight float64
	height float64
	unit   string
	output outputOptions
}

// calcResult is what calc prints in json and yaml mode.
type calcResult struct {
	Measurement models.Measurement `json:"measurement" yaml:"measurement"`
	Result      models.BMIResult   `json:"result" yaml:"result"`
}

func newCalcCommand() *cobra.Command {
	o := &calcOptions{}

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate BMI for one measurement",
		Example: `
bmi calc --weight 70 --height 1.75
bmi calc -w 70 -H 175 -u cm -o json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := o.output.validate(); err != nil {
				return err
			}
			unit, err := models.ParseHeightUnit(o.unit)
			if err != nil {
				return err
			}

			m := models.Measurement{Weight: o.weight, Height: unit.ToMeters(o.height)}
			result, err := services.CalculateMeasurement(m)
			if err != nil {
				return err
			}

			return o.output.print(cmd.OutOrStdout(), calcResult{Measurement: m, Result: result}, func(w io.Writer) {
				printResult(w, result)
			})
		},
	}

	cmd.Flags().Float64VarP(&o.weight, "weight", "w", 0, "Weight in kilograms")
	cmd.Flags().Float64VarP(&o.height, "height", "H", 0, "Height in --unit")
	cmd.Flags().StringVarP(&o.unit, "unit", "u", string(models.HeightUnitMeters), "Height unit: m or cm")
	_ = cmd.MarkFlagRequired("weight")
	_ = cmd.MarkFlagRequired("height")
	addOutputFlag(cmd, &o.output)

	return cmd
}

func printResult(w io.Writer, r models.BMIResult) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("Your BMI:", fmt.Sprintf("%.2f", r.BMI))
	tbl.AddRow("Category:", colorize(r.Category, r.Category.String())+" "+r.Emoji)
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(w, tbl)
	_, _ = fmt.Fprintln(w, "💡 Tip: BMI is a general guide. Consult a doctor for health advice.")
}
