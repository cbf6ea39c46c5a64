package commands

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/minibank/minibank/cmd/minibank/output"
)

// parseAmount turns a CLI argument into a money amount. Anything the decimal
// parser rejects is a usage error; sign and zero checks belong to the ledger.
func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, usagef("amount %q is not a valid number", s)
	}
	return d, nil
}

var depositCmd = &cobra.Command{
	Use:   "deposit <account-id> <amount>",
	Short: "Deposit money into an account",
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
		tx, err := l.Deposit(cmd.Context(), args[0], amount)
		if err != nil {
			return err
		}
		acct, err := l.GetAccount(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		output.Success("Deposited %s", output.Money(tx.Amount))
		output.Info("New balance: %s", output.Money(acct.Balance()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(depositCmd)
}
