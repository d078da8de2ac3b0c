package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/bandcode/internal/domain/resistor"
)

type layoutOptions struct {
	jsonOutput bool
}

type layoutJSONBand struct {
	Position    int                  `json:"position"`
	Name        string               `json:"name"`
	Role        resistor.RoleKind    `json:"role"`
	AllowZero   bool                 `json:"allow_zero,omitempty"`
	ValidColors []resistor.ColorName `json:"valid_colors"`
	Default     resistor.ColorName   `json:"default"`
}

type layoutJSONPayload struct {
	BandCount int              `json:"band_count"`
	Bands     []layoutJSONBand `json:"bands"`
}

func newLayoutCmd() *cobra.Command {
	opts := &layoutOptions{}

	cmd := &cobra.Command{
		Use:   "layout <bands>",
		Short: "Show the band roles and legal colors for a band count",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLayout(cmd, opts, args[0])
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runLayout(cmd *cobra.Command, opts *layoutOptions, arg string) error {
	bands, err := strconv.Atoi(arg)
	if err != nil {
		return newCommandError("show layout", fmt.Sprintf("parsing band count %q", arg), err, "Pass a number between 3 and 6.")
	}

	layout, err := resistor.LayoutFor(bands)
	if err != nil {
		return newCommandError("show layout", fmt.Sprintf("looking up %d-band layout", bands), err, "Pass a number between 3 and 6.")
	}
	defaults, err := resistor.DefaultSelection(bands)
	if err != nil {
		return newCommandError("show layout", "loading default selection", err, "")
	}

	payload := layoutJSONPayload{BandCount: bands, Bands: make([]layoutJSONBand, len(layout))}
	for i, role := range layout {
		payload.Bands[i] = layoutJSONBand{
			Position:    i + 1,
			Name:        role.Name,
			Role:        role.Kind,
			AllowZero:   role.Kind == resistor.RoleDigit && role.AllowZero,
			ValidColors: resistor.ValidColorsFor(role),
			Default:     defaults[i],
		}
	}

	if opts.jsonOutput {
		return writeJSON(cmd.OutOrStdout(), payload)
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "#\tBAND\tDEFAULT\tVALID COLORS")
	for _, band := range payload.Bands {
		fmt.Fprintf(writer, "%d\t%s\t%s\t%s\n", band.Position, band.Name, band.Default, joinColors(band.ValidColors))
	}
	return writer.Flush()
}
