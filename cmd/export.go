package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/abhisek/pmprep/internal/export"
	"github.com/abhisek/pmprep/internal/store"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [session-id]",
	Short: "Export a stored session to CSV",
	Long:  "Export a stored session to CSV. Without an argument the most recent session is exported.",
	Args:  cobra.MaximumNArgs(1),
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

		ctx := cmd.Context()
		var id string
		if len(args) == 1 {
			id = args[0]
		} else {
			id, err = st.LatestSessionID(ctx)
			if err != nil {
				return err
			}
			if id == "" {
				return fmt.Errorf("no sessions recorded yet")
			}
		}

		attempts, err := st.SessionAttempts(ctx, id)
		if err != nil {
			return err
		}
		if len(attempts) == 0 {
			return fmt.Errorf("no session with id %s", id)
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			dir := cfg.ExportDir
			if dir == "" {
				dir = "."
			}
			out = filepath.Join(dir, export.Filename(time.Now()))
		}

		if err := os.WriteFile(out, []byte(export.RecordText(attempts)), 0o644); err != nil {
			return fmt.Errorf("write export: %w", err)
		}
		fmt.Printf("Exported %d questions to %s\n", len(attempts), out)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("out", "o", "", "Output file path (default: dated name in the export dir)")
}
