package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/bandcode/internal/domain/resistor"
)

type colorsOptions struct {
	jsonOutput bool
}

type colorJSON struct {
	Name       resistor.ColorName `json:"name"`
	Hex        string             `json:"hex"`
	Digit      *int               `json:"digit"`
	Multiplier *float64           `json:"multiplier"`
	Tolerance  *float64           `json:"tolerance_percent"`
	TempCoeff  *float64           `json:"temp_coeff_ppm"`
}

func newColorsCmd() *cobra.Command {
	opts := &colorsOptions{}

	cmd := &cobra.Command{
		Use:   "colors",
		Short: "List the color code table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runColors(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runColors(cmd *cobra.Command, opts *colorsOptions) error {
	colors := resistor.Colors()

	if opts.jsonOutput {
		payload := make([]colorJSON, len(colors))
		for i, c := range colors {
			payload[i] = toColorJSON(c)
		}
		return writeJSON(cmd.OutOrStdout(), payload)
	}

	swatches := isTerminal(cmd.OutOrStdout())

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "COLOR\tDIGIT\tMULTIPLIER\tTOLERANCE\tTEMP. COEFF.")
	for _, c := range colors {
		name := string(c.Name)
		if swatches {
			name = lipgloss.NewStyle().Background(lipgloss.Color(c.Hex)).Render("  ") + " " + name
		}

		digit := "-"
		if d, ok := c.Digit(); ok {
			digit = strconv.Itoa(d)
		}
		multiplier := "-"
		if m, ok := c.Multiplier(); ok {
			multiplier = "×" + strconv.FormatFloat(m, 'f', -1, 64)
		}
		tolerance := "-"
		if t, ok := c.Tolerance(); ok {
			tolerance = resistor.FormatTolerance(t)
		}
		tempCoeff := "-"
		if tc, ok := c.TempCoeff(); ok {
			tempCoeff = resistor.FormatTempCoeff(tc)
		}

		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\n", name, digit, multiplier, tolerance, tempCoeff)
	}
	return writer.Flush()
}

func toColorJSON(c resistor.Color) colorJSON {
	out := colorJSON{Name: c.Name, Hex: c.Hex}
	if d, ok := c.Digit(); ok {
		out.Digit = &d
	}
	if m, ok := c.Multiplier(); ok {
		out.Multiplier = &m
	}
	if t, ok := c.Tolerance(); ok {
		out.Tolerance = &t
	}
	if tc, ok := c.TempCoeff(); ok {
		out.TempCoeff = &tc
	}
	return out
}
