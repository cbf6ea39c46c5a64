package commands

import (
	"github.com/spf13/cobra"

	"github.com/minibank/minibank/cmd/minibank/output"
)

var transferCmd = &cobra.Command{
	Use:   "transfer <from-account-id> <to-account-id> <amount>",
	Short: "Move money between two accounts",
	Long: `Move money from one account to another. Both the debit and the credit
are applied and persisted together; if either side fails, neither
account changes.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := parseAmount(args[2])
		if err != nil {
			return err
		}
		l, err := openLedger(cmd)
		if err != nil {
			return err
		}
		receipt, err := l.Transfer(cmd.Context(), args[0], args[1], amount)
		if err != nil {
			return err
		}

		output.Success("Transferred %s", output.Money(receipt.Outgoing.Amount))
		output.Info("Source balance: %s", output.Money(receipt.FromBalance))
		output.Info("Destination balance: %s", output.Money(receipt.ToBalance))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(transferCmd)
}
