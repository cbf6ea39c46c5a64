package commands

import (
	"github.com/spf13/cobra"

	"github.com/minibank/minibank/cmd/minibank/output"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <account-id>",
	Short: "Close an account permanently",
	Long: `Close an account and remove it from the account file. The account's
balance is forfeited and the deletion cannot be undone.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := openLedger(cmd)
		if err != nil {
			return err
		}
		if err := l.DeleteAccount(cmd.Context(), args[0]); err != nil {
			return err
		}

		output.Success("Account %s deleted", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
