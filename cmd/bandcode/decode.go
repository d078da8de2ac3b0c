package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/bandcode/internal/app/calculator"
	"github.com/alexisbeaulieu97/bandcode/internal/domain/resistor"
)

type decodeOptions struct {
	bands      int
	jsonOutput bool
}

func newDecodeCmd(app *appContext) *cobra.Command {
	opts := &decodeOptions{}

	cmd := &cobra.Command{
		Use:   "decode <color>...",
		Short: "Decode a resistor from its color bands",
		Long: `Decode reads the bands from left to right (tolerance band last) and prints
the resistance, tolerance, temperature coefficient and tolerance range.

Three to six colors are accepted; the band layout follows from the count.`,
		Example: `  bandcode decode brown black orange gold
  bandcode decode green red black orange gold brown --json`,
		Args: cobra.RangeArgs(1, 6),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(cmd, app, opts, args)
		},
	}

	cmd.Flags().IntVarP(&opts.bands, "bands", "b", 0, "Expected band count (3-6); defaults to the number of colors")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runDecode(cmd *cobra.Command, app *appContext, opts *decodeOptions, args []string) error {
	colors := splitColorArgs(args)

	bands := opts.bands
	if bands == 0 {
		bands = len(colors)
	}

	report, err := app.calculator.DecodeWithCount(bands, colors)
	if err != nil {
		return newCommandError("decode", fmt.Sprintf("decoding %q", strings.Join(colors, " ")), err, decodeSuggestion(err, bands))
	}

	if opts.jsonOutput {
		return writeJSON(cmd.OutOrStdout(), report)
	}
	renderReport(cmd.OutOrStdout(), report)
	return nil
}

// splitColorArgs accepts "brown black red" as well as "brown-black-red" or
// "brown,black,red".
func splitColorArgs(args []string) []string {
	var colors []string
	for _, arg := range args {
		colors = append(colors, strings.FieldsFunc(arg, func(r rune) bool {
			return r == ',' || r == '-' || r == ' '
		})...)
	}
	return colors
}

func decodeSuggestion(err error, bands int) string {
	switch {
	case resistor.IsCode(err, resistor.ErrCodeUnknownColor):
		return "Run 'bandcode colors' to list the recognised color names."
	case resistor.IsCode(err, resistor.ErrCodeRoleMismatch), resistor.IsCode(err, resistor.ErrCodeLength):
		if _, layoutErr := resistor.LayoutFor(bands); layoutErr == nil {
			return fmt.Sprintf("Run 'bandcode layout %d' to see which colors each band accepts.", bands)
		}
		return "Supply between 3 and 6 colors."
	default:
		return "Supply between 3 and 6 colors."
	}
}

func renderReport(w io.Writer, report calculator.Report) {
	fmt.Fprintf(w, "Bands:        %s\n", joinColors(report.Colors))
	fmt.Fprintf(w, "Resistance:   %s\n", report.Resistance)
	fmt.Fprintf(w, "Tolerance:    %s\n", report.Tolerance)
	if report.TempCoeff != "" {
		fmt.Fprintf(w, "Temp. Coeff.: %s\n", report.TempCoeff)
	}
	fmt.Fprintf(w, "Range:        %s\n", report.Range)
}
