package cmd

import (
	"github.com/spf13/cobra"

	"github.com/greendaybank/greenday-cli/internal/adapters/render/dashboard"
	"github.com/greendaybank/greenday-cli/internal/ports"
)

func newDashboardCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive banking dashboard",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := dashboard.Run(cmd.Context(), app.service, nil); err != nil {
				return err
			}

			// remember whoever was logged in when the session ended
			if identity := app.service.Identity(); !identity.IsZero() {
				return app.profiles.Save(cmd.Context(), ports.Profile{LastUser: identity, UpdatedAt: app.now()})
			}

			return nil
		},
	}
}
