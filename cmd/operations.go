package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/greendaybank/greenday-cli/internal/application"
	"github.com/greendaybank/greenday-cli/internal/domain"
)

// submitOperation runs one money-movement request for the resolved user and
// prints the outcome message the session produced.
func submitOperation(cmd *cobra.Command, a *app, user string, build func() (domain.OperationRequest, error)) error {
	if _, err := beginSession(cmd, a, user); err != nil {
		return err
	}

	req, err := build()
	if err != nil {
		return err
	}

	if submitErr := a.service.Submit(cmd.Context(), req); submitErr != nil {
		// the session composed the full failure text ("Deposit failed: ...")
		if notification, ok := a.service.Notification(); ok {
			return errors.New(notification.Message)
		}
		return submitErr
	}

	// Not read back from the notification slot: the reconcile refresh may
	// have replaced it with its own failure by now.
	_, err = fmt.Fprintln(cmd.OutOrStdout(), application.SuccessMessage(req))
	return err
}

func newDepositCmd(app *app) *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "deposit <amount>",
		Short: "Deposit cash into savings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return submitOperation(cmd, app, user, func() (domain.OperationRequest, error) {
				amount, err := domain.ParseAmount(args[0])
				if err != nil {
					return domain.OperationRequest{}, err
				}
				return domain.NewDeposit(amount), nil
			})
		},
	}

	cmd.Flags().StringVarP(&user, "user", "u", "", "user to act as (defaults to the last user)")

	return cmd
}

func newWithdrawCmd(app *app) *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "withdraw <amount>",
		Short: "Withdraw savings back to cash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return submitOperation(cmd, app, user, func() (domain.OperationRequest, error) {
				amount, err := domain.ParseAmount(args[0])
				if err != nil {
					return domain.OperationRequest{}, err
				}
				return domain.NewWithdraw(amount), nil
			})
		},
	}

	cmd.Flags().StringVarP(&user, "user", "u", "", "user to act as (defaults to the last user)")

	return cmd
}

func newSendCmd(app *app) *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "send <recipient> <amount>",
		Short: "Send cash to another user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return submitOperation(cmd, app, user, func() (domain.OperationRequest, error) {
				amount, err := domain.ParseAmount(args[1])
				if err != nil {
					return domain.OperationRequest{}, err
				}
				return domain.NewSend(domain.Identity(args[0]), amount), nil
			})
		},
	}

	cmd.Flags().StringVarP(&user, "user", "u", "", "user to act as (defaults to the last user)")

	return cmd
}

func newTransferCmd(app *app) *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "transfer <to-investment|to-savings> <amount>",
		Short: "Move money between savings and the investment bucket",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return submitOperation(cmd, app, user, func() (domain.OperationRequest, error) {
				direction, err := parseDirection(args[0])
				if err != nil {
					return domain.OperationRequest{}, err
				}
				amount, err := domain.ParseAmount(args[1])
				if err != nil {
					return domain.OperationRequest{}, err
				}
				return domain.NewTransfer(direction, amount), nil
			})
		},
	}

	cmd.Flags().StringVarP(&user, "user", "u", "", "user to act as (defaults to the last user)")

	return cmd
}

func newInvestCmd(app *app) *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "invest <fund> <amount>",
		Short: "Invest savings into a fund",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return submitOperation(cmd, app, user, func() (domain.OperationRequest, error) {
				amount, err := domain.ParseAmount(args[1])
				if err != nil {
					return domain.OperationRequest{}, err
				}
				fund := strings.ToUpper(args[0])
				return domain.NewInvest(fund, amount), nil
			})
		},
	}

	cmd.Flags().StringVarP(&user, "user", "u", "", "user to act as (defaults to the last user)")

	return cmd
}

func newLiquidateCmd(app *app) *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "liquidate",
		Short: "Withdraw all fund investments back to savings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return submitOperation(cmd, app, user, func() (domain.OperationRequest, error) {
				return domain.NewLiquidateInvestments(), nil
			})
		},
	}

	cmd.Flags().StringVarP(&user, "user", "u", "", "user to act as (defaults to the last user)")

	return cmd
}

func parseDirection(raw string) (domain.TransferDirection, error) {
	switch strings.ToLower(raw) {
	case "to-investment", "savings-to-investment":
		return domain.SavingsToInvestment, nil
	case "to-savings", "investment-to-savings":
		return domain.InvestmentToSavings, nil
	default:
		return "", fmt.Errorf("unknown direction %q: use to-investment or to-savings", raw)
	}
}
