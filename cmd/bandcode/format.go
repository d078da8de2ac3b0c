package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/bandcode/internal/domain/resistor"
)

type formatOptions struct {
	tolerance float64
}

func newFormatCmd() *cobra.Command {
	opts := &formatOptions{}

	cmd := &cobra.Command{
		Use:   "format <ohms>",
		Short: "Scale a resistance in ohms to engineering units",
		Example: `  bandcode format 520000
  bandcode format 100 --tolerance 5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, opts, args[0])
		},
	}

	cmd.Flags().Float64VarP(&opts.tolerance, "tolerance", "t", 0, "Also print the range for this tolerance in percent")

	return cmd
}

func runFormat(cmd *cobra.Command, opts *formatOptions, arg string) error {
	ohms, err := strconv.ParseFloat(arg, 64)
	switch {
	case err != nil:
	case !isFinite(ohms):
		err = fmt.Errorf("resistance must be a finite number")
	case ohms < 0:
		err = fmt.Errorf("resistance must not be negative")
	}
	if err != nil {
		return newCommandError("format", fmt.Sprintf("parsing resistance %q", arg), err, "Pass the value in ohms as a plain number, e.g. 4700 or 4.7e3.")
	}
	if !isFinite(opts.tolerance) || opts.tolerance < 0 {
		return newCommandError("format", "checking tolerance", fmt.Errorf("tolerance %v is not a finite, non-negative percentage", opts.tolerance), "")
	}

	fmt.Fprintln(cmd.OutOrStdout(), resistor.Format(ohms))
	if cmd.Flags().Changed("tolerance") {
		fmt.Fprintln(cmd.OutOrStdout(), resistor.FormatRange(ohms, opts.tolerance))
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
