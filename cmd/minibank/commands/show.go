package commands

import (
	"github.com/spf13/cobra"

	"github.com/minibank/minibank/cmd/minibank/output"
)

var showCmd = &cobra.Command{
	Use:   "show <account-id>",
	Short: "Show one account's profile and balance",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := openLedger(cmd)
		if err != nil {
			return err
		}
		acct, err := l.GetAccount(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		output.Info("Account ID: %s", acct.ID)
		output.Info("Holder: %s %s", acct.FirstName, acct.LastName)
		output.Info("Age: %d", acct.Age)
		output.Info("State: %s", acct.State)
		output.Info("Job: %s", acct.Job)
		output.Info("Type: %s", acct.Type)
		output.Info("Balance: %s", output.Money(acct.Balance()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
