package commands

import (
	"github.com/spf13/cobra"

	"github.com/minibank/minibank/cmd/minibank/tui"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Work with accounts interactively",
	Long: `Open a terminal session over the account file. The ledger stays in
memory for the whole sitting, so transaction histories build up as
you work and can be inspected or exported before you quit. Every
deposit, withdrawal, transfer and profile change is still written to
the account file the moment it is confirmed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := openLedger(cmd)
		if err != nil {
			return err
		}
		return tui.RunSession(cmd.Context(), l)
	},
}

func init() {
	rootCmd.AddCommand(sessionCmd)
}
