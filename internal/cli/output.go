package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dlfelps/bmi-calculator/internal/models"
)

// Output formats accepted by -o.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// outputOptions is the -o flag shared by commands that print results.
type outputOptions struct {
	Format string
}

func addOutputFlag(cmd *cobra.Command, o *outputOptions) {
	cmd.Flags().StringVarP(&o.Format, "output", "o", formatText,
		"Output format. One of 'text', 'json' or 'yaml'.")
}

func (o *outputOptions) validate() error {
	switch o.Format {
	case formatText, formatJSON, formatYAML:
		return nil
	default:
		return fmt.Errorf("unknown output format %q: must be text, json or yaml", o.Format)
	}
}

// print writes v as JSON or YAML, or calls text for the human format.
func (o *outputOptions) print(w io.Writer, v any, text func(io.Writer)) error {
	switch o.Format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		text(w)
		return nil
	}
}

// categoryColor is the terminal color closest to each category's display
// color.
var categoryColor = map[models.Category]color.Attribute{
	models.CategoryUnderweight:  color.FgYellow,
	models.CategoryNormalWeight: color.FgGreen,
	models.CategoryOverweight:   color.FgHiYellow,
	models.CategoryObese:        color.FgRed,
}

func colorize(c models.Category, s string) string {
	attr, ok := categoryColor[c]
	if !ok {
		return s
	}
	return color.New(attr, color.Bold).Sprint(s)
}
