package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/bandcode/internal/app/calculator"
	"github.com/alexisbeaulieu97/bandcode/internal/config"
	bandcodeerrors "github.com/alexisbeaulieu97/bandcode/pkg/errors"
)

type batchOptions struct {
	jsonOutput bool
}

// errBatchFailures signals that the table was printed but some entries
// did not decode.
var errBatchFailures = errors.New("some resistors could not be decoded")

func newBatchCmd(app *appContext) *cobra.Command {
	opts := &batchOptions{}

	cmd := &cobra.Command{
		Use:   "batch <file.yaml>",
		Short: "Decode every resistor listed in a preset file",
		Long: `Batch reads a YAML preset document:

  version: 1.0.0
  name: Bench drawer
  resistors:
    - id: pull_up
      label: 10k pull-up
      bands: [brown, black, orange, gold]
    - id: led
      bands: red-red-brown-gold

and prints the decoded value of each entry.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, app, opts, args[0])
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runBatch(cmd *cobra.Command, app *appContext, opts *batchOptions, path string) error {
	cfg, err := config.ParseConfig(path)
	if err != nil {
		return newCommandError("batch", fmt.Sprintf("loading %s", path), err, configSuggestion(err))
	}

	app.log.WithFields(map[string]any{"path": path, "resistors": len(cfg.Resistors)}).Debug("preset file loaded")

	batch, err := app.calculator.DecodeConfig(cfg)
	if err != nil {
		return newCommandError("batch", fmt.Sprintf("decoding %s", path), err, "Fix the entry or remove settings.stop_on_error to see every failure.")
	}

	if app.log.Debugging() {
		for _, entry := range batch.Entries {
			if entry.Err != nil {
				app.log.With("resistor", entry.ID).Debug(entry.Error)
			}
		}
	}

	if opts.jsonOutput {
		if err := writeJSON(cmd.OutOrStdout(), batch); err != nil {
			return err
		}
	} else if err := renderBatchTable(cmd.OutOrStdout(), batch); err != nil {
		return err
	}

	if batch.Failed > 0 {
		return fmt.Errorf("%w: %d of %d", errBatchFailures, batch.Failed, len(batch.Entries))
	}
	return nil
}

func renderBatchTable(w io.Writer, batch *calculator.Batch) error {
	writer := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tNAME\tBANDS\tRESISTANCE\tTOLERANCE\tRANGE")

	for _, entry := range batch.Entries {
		if entry.Report == nil {
			fmt.Fprintf(writer, "%s\t%s\t-\terror: %s\t\t\n", entry.ID, entry.Name, entry.Error)
			continue
		}
		r := entry.Report
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\t%s\n", entry.ID, entry.Name, joinColors(r.Colors), r.Resistance, r.Tolerance, r.Range)
	}

	return writer.Flush()
}

func configSuggestion(err error) string {
	var parseErr *bandcodeerrors.ParseError
	if errors.As(err, &parseErr) {
		if parseErr.Line > 0 {
			return fmt.Sprintf("Check the YAML syntax near line %d.", parseErr.Line)
		}
		return "Check that the file exists and you have permission to read it."
	}

	var problems bandcodeerrors.ValidationErrors
	if errors.As(err, &problems) {
		return "Correct the listed fields; 'bandcode colors' shows the accepted color names."
	}

	return "Check the preset file and try again."
}
