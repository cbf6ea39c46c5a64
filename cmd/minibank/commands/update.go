package commands

import (
	"github.com/spf13/cobra"

	"github.com/minibank/minibank/cmd/minibank/output"
	"github.com/minibank/minibank/internal/domain"
)

var (
	updFirstName string
	updLastName  string
	updAge       int
	updState     string
	updJob       string
	updType      string
)

var updateCmd = &cobra.Command{
	Use:   "update <account-id>",
	Short: "Update an account's profile",
	Long: `Update one or more profile fields of an account. Only the flags you
pass are changed; a single invalid field rejects the whole update.
Balances can only be changed through deposit, withdraw and transfer.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var upd domain.ProfileUpdate
		flags := cmd.Flags()

		if flags.Changed("first-name") {
			upd.FirstName = &updFirstName
		}
		if flags.Changed("last-name") {
			upd.LastName = &updLastName
		}
		if flags.Changed("age") {
			upd.Age = &updAge
		}
		if flags.Changed("state") {
			upd.State = &updState
		}
		if flags.Changed("job") {
			job, err := domain.ParseJob(updJob)
			if err != nil {
				return usagef("--job must be employed, unemployed or retired, got %q", updJob)
			}
			upd.Job = &job
		}
		if flags.Changed("type") {
			typ, err := domain.ParseAccountType(updType)
			if err != nil {
				return usagef("--type must be checking or savings, got %q", updType)
			}
			upd.Type = &typ
		}
		if upd == (domain.ProfileUpdate{}) {
			return usagef("nothing to update: pass at least one profile flag")
		}

		l, err := openLedger(cmd)
		if err != nil {
			return err
		}
		if err := l.UpdateAccount(cmd.Context(), args[0], upd); err != nil {
			return err
		}

		output.Success("Account %s updated", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)

	updateCmd.Flags().StringVar(&updFirstName, "first-name", "", "New first name")
	updateCmd.Flags().StringVar(&updLastName, "last-name", "", "New last name")
	updateCmd.Flags().IntVar(&updAge, "age", 0, "New age (18-120)")
	updateCmd.Flags().StringVar(&updState, "state", "", "New state of residence")
	updateCmd.Flags().StringVar(&updJob, "job", "", "New employment status")
	updateCmd.Flags().StringVar(&updType, "type", "", "New account type")
}
