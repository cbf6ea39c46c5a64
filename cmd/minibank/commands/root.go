package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/minibank/minibank/cmd/minibank/output"
	"github.com/minibank/minibank/internal/config"
	"github.com/minibank/minibank/internal/ledger"
	"github.com/minibank/minibank/internal/logging"
	"github.com/minibank/minibank/internal/seed"
	"github.com/minibank/minibank/internal/store"
)

var (
	cfg       *config.Config
	storeFile string
)

var rootCmd = &cobra.Command{
	Use:   "minibank",
	Short: "minibank - a small banking ledger kept in one CSV file",
	Long: `minibank manages bank accounts stored in a single CSV file. Profile
changes, deposits, withdrawals and transfers are written to the file
before they are acknowledged, so the file always matches the last
confirmed operation.

When the file does not exist yet, the first command seeds it with
starter accounts (SEED_ACCOUNTS, default 20).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return err
		}
		cfg = c
		logger := logging.Init("minibank", c.LogLevel, c.AppEnv)
		cmd.SetContext(logging.WithLogger(cmd.Context(), logger))
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		slog.Debug("command failed", "error", err)
		output.Error("%s", output.UserMessage(err))
		os.Exit(exitCode(err))
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&storeFile, "file", "", "Account file to operate on (defaults to STORE_PATH)")
}

// openLedger loads the account table, seeding it first if the file is new.
func openLedger(cmd *cobra.Command) (*ledger.Ledger, error) {
	path := storeFile
	if path == "" {
		path = cfg.StorePath
	}
	st := store.NewFileStore(path)
	return ledger.Open(cmd.Context(), st, seed.Provider(cfg.SeedAccounts))
}
