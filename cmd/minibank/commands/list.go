package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/minibank/minibank/cmd/minibank/output"
	"github.com/minibank/minibank/internal/domain"
	"github.com/minibank/minibank/internal/ledger"
)

var (
	listType  string
	listState string
	listSort  string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List accounts",
	Example: `  minibank list
  minibank list --type savings --sort balance
  minibank list --state Iowa --sort name`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var filter ledger.ListFilter
		if listType != "" {
			typ, err := domain.ParseAccountType(listType)
			if err != nil {
				return usagef("--type must be checking or savings, got %q", listType)
			}
			filter.Type = typ
		}
		filter.State = listState
		filter.SortBy = ledger.SortKey(listSort)
		if !filter.SortBy.IsValid() {
			return usagef("--sort must be name or balance, got %q", listSort)
		}

		l, err := openLedger(cmd)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ACCOUNT ID\tHOLDER\tAGE\tSTATE\tJOB\tTYPE\tBALANCE")
		count := 0
		for acct := range l.ListAccounts(filter) {
			count++
			fmt.Fprintf(w, "%s\t%s %s\t%d\t%s\t%s\t%s\t%s\n",
				acct.ID,
				acct.FirstName, acct.LastName,
				acct.Age,
				acct.State,
				acct.Job,
				acct.Type,
				output.Money(acct.Balance()),
			)
		}
		if err := w.Flush(); err != nil {
			return fmt.Errorf("list: %w", err)
		}

		output.Muted("%d of %d account(s)", count, l.Len())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVar(&listType, "type", "", "Only show accounts of this type (checking|savings)")
	listCmd.Flags().StringVar(&listState, "state", "", "Only show accounts in this state")
	listCmd.Flags().StringVar(&listSort, "sort", "", "Sort by name or balance instead of creation order")
}
