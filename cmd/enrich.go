package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/pmprep/internal/bank"
	"github.com/abhisek/pmprep/internal/enrich"
	"github.com/abhisek/pmprep/internal/llm"
	"github.com/abhisek/pmprep/internal/store"
	"github.com/spf13/cobra"
)

var enrichCmd = &cobra.Command{
	Use:   "enrich <bank.csv>",
	Short: "Fill in missing explanations using an LLM",
	Long: "Read a CSV question bank, generate an explanation for every question " +
		"that lacks one, and write the enriched bank back out. Requires an " +
		"LLM provider configured via PMPREP_LLM_PROVIDER and an API key.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read bank file: %w", err)
		}
		qs := bank.ParseCSV(string(data))
		if len(qs) == 0 {
			return fmt.Errorf("no usable questions in %s", args[0])
		}

		var log llm.RequestLog
		if dbPath, err := resolveDBPath(cmd); err == nil {
			if st, err := store.Open(dbPath); err == nil {
				defer st.Close()
				log = st
			}
		}

		provider, err := llm.NewProviderFromEnv(ctx, log)
		if err != nil {
			return fmt.Errorf("configure LLM provider: %w", err)
		}

		svc := enrich.NewService(provider)
		fmt.Printf("Enriching %d questions with %s...\n", len(qs), svc.ModelID())
		n, err := svc.EnrichBank(ctx, qs, func(p enrich.Progress) {
			switch {
			case p.Err != nil:
				fmt.Fprintf(os.Stderr, "  %-12s error: %v\n", p.Question.ID, p.Err)
			case p.Enriched:
				fmt.Printf("  %-12s done\n", p.Question.ID)
			default:
				fmt.Printf("  %-12s skipped (has explanation)\n", p.Question.ID)
			}
		})
		if err != nil {
			return err
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = args[0]
		}
		if err := os.WriteFile(out, []byte(bank.EncodeCSV(qs)), 0o644); err != nil {
			return fmt.Errorf("write enriched bank: %w", err)
		}

		fmt.Printf("\nEnriched %d questions, wrote %s\n", n, out)
		usage := svc.Usage()
		fmt.Printf("Tokens: %d in, %d out", usage.InputTokens, usage.OutputTokens)
		if cost := llm.LookupCost(svc.ModelID()); cost != nil {
			fmt.Printf(" (~$%.4f)", cost.Cost(usage.InputTokens, usage.OutputTokens))
		}
		fmt.Println()
		return nil
	},
}

func init() {
	enrichCmd.Flags().StringP("out", "o", "", "Output file path (default: overwrite the input)")
}
