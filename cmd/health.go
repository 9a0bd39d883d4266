package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHealthCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check whether the ledger service is reachable",
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := app.gateway.Health(cmd.Context())
			if err != nil {
				return fmt.Errorf("ledger health check: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), status)
			return err
		},
	}
}
