package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/pmprep/internal/store"
	"github.com/spf13/cobra"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the LLM request log",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve db path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		reqs, err := st.RecentLLMRequests(cmd.Context(), limit)
		if err != nil {
			return err
		}
		if len(reqs) == 0 {
			fmt.Println("No LLM requests recorded yet.")
			return nil
		}

		fmt.Printf("%-16s  %-10s  %-24s  %-8s  %6s  %6s  %8s  %s\n",
			"WHEN", "PROVIDER", "MODEL", "PURPOSE", "IN", "OUT", "LATENCY", "STATUS")
		fmt.Println(strings.Repeat("─", 100))
		var totalIn, totalOut int
		for _, r := range reqs {
			status := "ok"
			if !r.Success {
				status = "error: " + r.ErrorMessage
			}
			fmt.Printf("%-16s  %-10s  %-24s  %-8s  %6d  %6d  %7dms  %s\n",
				r.CreatedAt.Local().Format("2006-01-02 15:04"), r.Provider, r.Model,
				r.Purpose, r.InputTokens, r.OutputTokens, r.LatencyMs, status)
			totalIn += r.InputTokens
			totalOut += r.OutputTokens
		}
		fmt.Printf("\nTotal tokens: %d in, %d out\n", totalIn, totalOut)
		return nil
	},
}

func init() {
	llmCmd.Flags().Int("limit", 50, "Maximum number of requests to list")
}
