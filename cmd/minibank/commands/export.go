package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/minibank/minibank/cmd/minibank/output"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export <account-id>",
	Short: "Export an account's session transactions as CSV",
	Example: `  minibank export 3b241101-e2bb-4255-8caf-4136c566a962 --out statement.csv
  minibank export 3b241101-e2bb-4255-8caf-4136c566a962 > statement.csv`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := openLedger(cmd)
		if err != nil {
			return err
		}

		if exportOut == "" {
			_, err := l.ExportHistory(cmd.Context(), args[0], os.Stdout)
			return err
		}

		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}
		n, err := l.ExportHistory(cmd.Context(), args[0], f)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return err
		}

		output.Success("Exported %d transaction(s) to %s", n, exportOut)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportOut, "out", "", "Write the CSV to this file instead of stdout")
}
