package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/pmprep/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent sessions",
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
		sessions, err := st.RecentSessions(cmd.Context(), limit)
		if err != nil {
			return err
		}
		if len(sessions) == 0 {
			fmt.Println("No sessions recorded yet.")
			return nil
		}

		fmt.Printf("%-36s  %-16s  %-8s  %5s  %9s  %8s  %8s\n",
			"ID", "STARTED", "MODE", "TOTAL", "FIRST-TRY", "ACCURACY", "TIME")
		fmt.Println(strings.Repeat("─", 102))
		for _, s := range sessions {
			fmt.Printf("%-36s  %-16s  %-8s  %5d  %9d  %7d%%  %8s\n",
				s.ID, s.StartedAt.Local().Format("2006-01-02 15:04"), s.Mode,
				s.Total, s.FirstTryCorrect, s.AccuracyPct, formatDuration(s.Duration))
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of sessions to list")
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%dm%02ds", m, s)
}
