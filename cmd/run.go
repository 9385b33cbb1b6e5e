package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/pmprep/internal/app"
	"github.com/abhisek/pmprep/internal/bank"
	"github.com/abhisek/pmprep/internal/config"
	"github.com/abhisek/pmprep/internal/store"
	"github.com/spf13/cobra"
)

// runApp is the default action: load config and bank, open the
// history database, and hand off to the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	result, err := loadBank(cmd, cfg)
	if err != nil {
		return err
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve db path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		// Session history is a convenience, not a requirement.
		fmt.Fprintf(os.Stderr, "warning: history disabled: %v\n", err)
		st = nil
	}
	if st != nil {
		defer st.Close()
	}

	return app.Run(app.Options{
		Store:  st,
		Bank:   result,
		Config: cfg,
	})
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// loadBank resolves the question bank. An explicit --bank flag must
// parse or the command fails; otherwise the config fallback chain runs
// and degrades to the starter set.
func loadBank(cmd *cobra.Command, cfg config.Config) (bank.LoadResult, error) {
	if path, _ := cmd.Flags().GetString("bank"); path != "" {
		return bank.LoadFile(path)
	}
	return bank.Load(cfg.BankJSON, cfg.BankCSV), nil
}
