package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/rto/internal/app"
)

type rootFlags struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "rto",
		Short: "rto writes a LiveSplit file with a random tool order that respects every prerequisite",
		Long: `rto shuffles the tool catalog until every tool's prerequisites are met by
the tools placed before it, prints the order with a justification for each
prerequisite, and writes the splits to rto-<first tool>.lss.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := opts.resolve(cmd, flags)
			if err != nil {
				return err
			}

			log, err := newLogger(cmd, settings.LogLevel())
			if err != nil {
				return err
			}

			_, err = app.NewService(log).Generate(cmd.Context(), app.GenerateRequest{
				Settings: settings,
				Out:      cmd.OutOrStdout(),
				Color:    colorEnabled(cmd),
			})
			return err
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	opts.register(cmd)

	cmd.AddCommand(newCheckCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
