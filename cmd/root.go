package cmd

import (
	"github.com/abhisek/pmprep/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pmprep",
	Short: "PMP practice-exam trainer",
	Long:  "pmprep is a terminal trainer for the PMP exam: timed practice sessions, first-try scoring, and an LLM-backed question enricher.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PMPREP_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (overrides PMPREP_CONFIG env var)")
	rootCmd.PersistentFlags().String("bank", "", "Path to a question bank file (.csv or .json), overrides config")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(enrichCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then PMPREP_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
