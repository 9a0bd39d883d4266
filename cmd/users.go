package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newUsersCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List users known to the ledger",
		RunE: func(cmd *cobra.Command, _ []string) error {
			users, err := app.service.Identities(cmd.Context())
			if err != nil {
				return fmt.Errorf("list users: %w", err)
			}

			for _, user := range users {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), user)
			}

			return nil
		},
	}
}
