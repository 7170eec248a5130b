package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/rto/internal/app"
	"github.com/alexisbeaulieu97/rto/internal/config"
)

func newCheckCmd(root *rootFlags) *cobra.Command {
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Prove whether any tool order can satisfy every prerequisite",
		Long: `Check encodes the catalog's prerequisites as a boolean satisfiability problem
and solves it exactly. It exits with status 1 when no valid order exists and
lists prerequisites that name tools missing from the catalog.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(cmd, config.Settings{Verbose: root.verbose}.LogLevel())
			if err != nil {
				return err
			}

			_, err = app.NewService(log).Check(cmd.Context(), app.CheckRequest{
				CatalogPath: catalogPath,
				Out:         cmd.OutOrStdout(),
				Color:       colorEnabled(cmd),
			})
			return err
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Path to a JSON or YAML tool catalog (default: built-in catalog)")

	return cmd
}
