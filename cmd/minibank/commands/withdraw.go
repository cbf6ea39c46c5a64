package commands

import (
	"github.com/spf13/cobra"

	"github.com/minibank/minibank/cmd/minibank/output"
)

var withdrawCmd = &cobra.Command{
	Use:   "withdraw <account-id> <amount>",
	Short: "Withdraw money from an account",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := parseAmount(args[1])
		if err != nil {
			return err
		}
		l, err := openLedger(cmd)
		if err != nil {
			return err
		}
		tx, err := l.Withdraw(cmd.Context(), args[0], amount)
		if err != nil {
			return err
		}
		acct, err := l.GetAccount(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		output.Success("Withdrew %s", output.Money(tx.Amount))
		output.Info("New balance: %s", output.Money(acct.Balance()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(withdrawCmd)
}
