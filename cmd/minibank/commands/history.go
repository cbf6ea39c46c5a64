package commands

import (
	"fmt"
	"iter"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/minibank/minibank/cmd/minibank/output"
	"github.com/minibank/minibank/internal/domain"
)

var historyKind string

var historyCmd = &cobra.Command{
	Use:   "history <account-id>",
	Short: "Show an account's transactions from this session",
	Long: `Show the transactions recorded for an account since the program
started. Transactions are kept in memory only, so each run starts
with an empty history.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := openLedger(cmd)
		if err != nil {
			return err
		}
		acct, err := l.GetAccount(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		var seq iter.Seq[domain.Transaction]
		if historyKind != "" {
			kind, err := domain.ParseTransactionKind(historyKind)
			if err != nil {
				return usagef("--kind must be deposit, withdrawal, transfer_in or transfer_out, got %q", historyKind)
			}
			seq = acct.FilterHistory(kind)
		} else {
			seq = acct.History()
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "WHEN\tKIND\tAMOUNT\tCOUNTERPARTY")
		count := 0
		for tx := range seq {
			count++
			counterparty := tx.Counterparty
			if counterparty == "" {
				counterparty = "-"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				tx.Timestamp.Format("2006-01-02 15:04:05"),
				tx.Kind,
				output.SignedMoney(tx),
				counterparty,
			)
		}
		if err := w.Flush(); err != nil {
			return fmt.Errorf("history: %w", err)
		}

		if count == 0 {
			output.Muted("no transactions this session")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().StringVar(&historyKind, "kind", "", "Only show one kind of transaction")
}
