package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	app := &app{}

	rootCmd := &cobra.Command{
		Use:           "gday",
		Short:         "Green Day Bank client: balances, transfers and investments from the terminal",
		Long:          "gday talks to the Green Day Bank ledger service. It lists users, shows multi-bucket balances, moves money between cash, savings and investment funds, and offers an interactive dashboard.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.wire()
		},
	}

	rootCmd.PersistentFlags().StringVar(&app.ledgerURL, "ledger-url", "", "ledger service base URL (overrides config and GDAY_LEDGER_URL)")
	rootCmd.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		newVersionCmd(),
		newUsersCmd(app),
		newBalanceCmd(app),
		newDepositCmd(app),
		newWithdrawCmd(app),
		newSendCmd(app),
		newTransferCmd(app),
		newInvestCmd(app),
		newLiquidateCmd(app),
		newHealthCmd(app),
		newDashboardCmd(app),
	)

	return rootCmd
}
