package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/bandcode/internal/app/calculator"
	"github.com/alexisbeaulieu97/bandcode/internal/logger"
)

type rootFlags struct {
	verbose   bool
	logFormat string
}

// appContext bundles the services created once flags are parsed.
type appContext struct {
	log        *logger.Logger
	calculator *calculator.Service
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	app := &appContext{}

	cmd := &cobra.Command{
		Use:           "bandcode",
		Short:         "bandcode decodes IEC 60062 resistor color bands",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.init(cmd, flags)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "console", "Log format: console or json")

	cmd.AddCommand(newDecodeCmd(app))
	cmd.AddCommand(newLayoutCmd())
	cmd.AddCommand(newColorsCmd())
	cmd.AddCommand(newFormatCmd())
	cmd.AddCommand(newBatchCmd(app))
	cmd.AddCommand(newPickCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func (a *appContext) init(cmd *cobra.Command, flags *rootFlags) error {
	var human bool
	switch flags.logFormat {
	case "console":
		human = true
	case "json":
	default:
		return newCommandError("start", "configuring logging", fmt.Errorf("unknown log format %q", flags.logFormat), "Use --log-format console or --log-format json.")
	}

	level := "warn"
	if flags.verbose {
		level = "debug"
	}

	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: human,
		Writer:        cmd.ErrOrStderr(),
		Component:     cmd.Name(),
	})
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	a.log = log
	a.calculator = calculator.NewService(log)
	return nil
}
