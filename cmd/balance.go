package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/greendaybank/greenday-cli/internal/adapters/render/balanceview"
)

func newBalanceCmd(app *app) *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Show all balance buckets for a user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			identity, err := beginSession(cmd, app, user)
			if err != nil {
				return err
			}

			snapshot, ok := app.service.Snapshot()
			if !ok {
				if notification, present := app.service.Notification(); present {
					return errors.New(notification.Message)
				}
				return errors.New("balance unavailable")
			}

			rendered, err := balanceview.Render(identity, snapshot)
			if err != nil {
				return fmt.Errorf("render balance: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().StringVarP(&user, "user", "u", "", "user to act as (defaults to the last user)")

	return cmd
}
