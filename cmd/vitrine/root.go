package main

import (
	"github.com/spf13/cobra"

	"github.com/vitrinehq/vitrine/internal/logger"
)

type rootFlags struct {
	verbose bool
	noColor bool
}

// runLogger builds the per-invocation logger. Logging failures degrade to a
// nil logger, which is a safe no-op, rather than blocking the command.
func (f *rootFlags) runLogger() *logger.Logger {
	level := "info"
	if f.verbose {
		level = "debug"
	}

	log, err := logger.New(logger.Options{Level: level, Pretty: true})
	if err != nil {
		return nil
	}
	return log
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "vitrine",
		Short:         "vitrine composes themed storefront ambience and signage",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "Disable styled output")

	cmd.AddCommand(newOpenCmd(flags))
	cmd.AddCommand(newComposeCmd(flags))
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newPreviewCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
