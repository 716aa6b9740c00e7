package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"blended-fee-engine/internal/format"
	"blended-fee-engine/internal/logger"
)

var version = "dev"

type globalOptions struct {
	debug       bool
	output      string
	locale      string
	placeholder string

	log       logger.Logger
	formatter *format.Formatter
}

func newRootCommand() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate the revenue impact of a blended management-fee model",
		Long: `Estimate converts a channel partner's commission book into a blended
revenue model that adds a per-employee management fee.

It replays scenario files, applies ad-hoc input changes to the default
snapshot and prints the derived metrics as a table or JSON.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.init()
		},
	}

	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "table", "Output format: table or json")
	cmd.PersistentFlags().StringVar(&opts.locale, "locale", format.DefaultLocale, "Locale used for number grouping")
	cmd.PersistentFlags().StringVar(&opts.placeholder, "placeholder", format.DefaultPlaceholder, "Text shown for undefined percentages")

	cmd.AddCommand(newRunCommand(opts))
	cmd.AddCommand(newSetCommand(opts))
	cmd.AddCommand(newDefaultsCommand(opts))

	return cmd
}

func (o *globalOptions) init() error {
	if o.output != "table" && o.output != "json" {
		return fmt.Errorf("unsupported output %q: must be table or json", o.output)
	}

	o.log = logger.NewNop()
	if o.debug {
		log, err := logger.NewStructured("debug", "console")
		if err != nil {
			return fmt.Errorf("build logger: %w", err)
		}
		o.log = log
	}

	f, err := format.New(o.locale, o.placeholder)
	if err != nil {
		return err
	}
	o.formatter = f
	return nil
}

func execute() error {
	return newRootCommand().Execute()
}
