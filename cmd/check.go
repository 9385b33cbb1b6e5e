package cmd

import (
	"fmt"

	"github.com/abhisek/pmprep/internal/bank"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [bank-file]",
	Short: "Validate the question bank without starting a session",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var result bank.LoadResult
		if len(args) == 1 {
			var err error
			result, err = bank.LoadFile(args[0])
			if err != nil {
				return err
			}
		} else {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			result, err = loadBank(cmd, cfg)
			if err != nil {
				return err
			}
		}
		printBankReport(result)
		return nil
	},
}

func printBankReport(result bank.LoadResult) {
	if result.Path != "" {
		fmt.Printf("Bank:      %s (%s)\n", result.Path, result.Source)
	} else {
		fmt.Printf("Bank:      built-in starter set\n")
	}
	fmt.Printf("Questions: %d\n", len(result.Questions))

	byDomain := make(map[bank.Domain]int)
	byType := make(map[bank.ItemType]int)
	explained := 0
	for _, q := range result.Questions {
		byDomain[q.Domain]++
		byType[q.Type]++
		if q.Explanation != "" {
			explained++
		}
	}

	fmt.Println()
	for _, d := range bank.AllDomains {
		if byDomain[d] == 0 {
			continue
		}
		fmt.Printf("  %-22s %d\n", string(d), byDomain[d])
	}
	fmt.Println()
	for _, t := range []bank.ItemType{bank.ItemSingle, bank.ItemMulti, bank.ItemMatch} {
		if byType[t] == 0 {
			continue
		}
		fmt.Printf("  %-22s %d\n", string(t), byType[t])
	}
	fmt.Printf("\nWith explanation: %d of %d\n", explained, len(result.Questions))

	if len(result.Warnings) > 0 {
		fmt.Printf("\nWarnings (%d):\n", len(result.Warnings))
		for _, w := range result.Warnings {
			fmt.Printf("  - %s\n", w)
		}
	}
}
