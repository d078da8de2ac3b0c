package main

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/bandcode/internal/tui/picker"
)

type pickOptions struct {
	bands int
}

var errNotTerminal = errors.New("stdin and stdout must be a terminal")

// pickRunner and terminalCheck are swapped out in tests.
var (
	pickRunner    = runPickProgram
	terminalCheck = isTerminal
)

func newPickCmd(app *appContext) *cobra.Command {
	opts := &pickOptions{}

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Choose bands interactively and watch the value update",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := picker.New(app.calculator, opts.bands)
			if err != nil {
				return newCommandError("start picker", fmt.Sprintf("preparing %d-band layout", opts.bands), err, "Use --bands 3, 4, 5 or 6.")
			}

			app.log.With("bands", opts.bands).Debug("launching picker")
			final, err := pickRunner(cmd, model)
			if err != nil {
				return newCommandError("run picker", "running the interactive picker", err, "Run 'bandcode decode' for non-interactive use.")
			}

			// Leave the last decoded value on screen.
			if final.Report().BandCount > 0 {
				renderReport(cmd.OutOrStdout(), final.Report())
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.bands, "bands", "b", 4, "Initial band count (3-6)")

	return cmd
}

func runPickProgram(cmd *cobra.Command, model picker.Model) (picker.Model, error) {
	in, out := cmd.InOrStdin(), cmd.OutOrStdout()
	if !terminalCheck(in) || !terminalCheck(out) {
		return picker.Model{}, errNotTerminal
	}

	program := tea.NewProgram(model,
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	result, err := program.Run()
	if err != nil {
		return picker.Model{}, err
	}

	final, ok := result.(picker.Model)
	if !ok {
		return picker.Model{}, fmt.Errorf("unexpected model type %T", result)
	}
	return final, nil
}
