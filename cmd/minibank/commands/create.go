package commands

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/minibank/minibank/cmd/minibank/output"
	"github.com/minibank/minibank/internal/domain"
)

var (
	createFirstName string
	createLastName  string
	createAge       int
	createState     string
	createJob       string
	createType      string
	createBalance   string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Open a new account",
	Example: `  minibank create --first-name James --last-name Smith --age 40 \
      --state Iowa --job employed --type checking --balance 250.00`,
	RunE: func(cmd *cobra.Command, args []string) error {
		job, err := domain.ParseJob(createJob)
		if err != nil {
			return usagef("--job must be employed, unemployed or retired, got %q", createJob)
		}
		typ, err := domain.ParseAccountType(createType)
		if err != nil {
			return usagef("--type must be checking or savings, got %q", createType)
		}
		opening := decimal.Zero
		if createBalance != "" {
			opening, err = decimal.NewFromString(createBalance)
			if err != nil {
				return usagef("--balance %q is not a valid amount", createBalance)
			}
		}

		l, err := openLedger(cmd)
		if err != nil {
			return err
		}
		acct, err := l.CreateAccount(cmd.Context(), domain.Profile{
			FirstName: createFirstName,
			LastName:  createLastName,
			Age:       createAge,
			State:     createState,
			Job:       job,
			Type:      typ,
		}, opening)
		if err != nil {
			return err
		}

		output.Success("Account created for %s %s", acct.FirstName, acct.LastName)
		output.Info("Account ID: %s", acct.ID)
		output.Info("Balance: %s", output.Money(acct.Balance()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(createCmd)

	createCmd.Flags().StringVar(&createFirstName, "first-name", "", "Account holder's first name")
	createCmd.Flags().StringVar(&createLastName, "last-name", "", "Account holder's last name")
	createCmd.Flags().IntVar(&createAge, "age", 0, "Account holder's age (18-120)")
	createCmd.Flags().StringVar(&createState, "state", "", "US state of residence")
	createCmd.Flags().StringVar(&createJob, "job", "", "Employment status: employed, unemployed or retired")
	createCmd.Flags().StringVar(&createType, "type", "", "Account type: checking or savings")
	createCmd.Flags().StringVar(&createBalance, "balance", "", "Opening balance (defaults to 0)")

	for _, flag := range []string{"first-name", "last-name", "age", "state", "job", "type"} {
		_ = createCmd.MarkFlagRequired(flag)
	}
}
