package bank

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadResult describes where a bank came from and any non-fatal issues
// found while loading it.
type LoadResult struct {
	Questions []Question
	Source    string   // "json", "csv", or "starter"
	Path      string   // file the bank was read from, empty for starter
	Warnings  []string // duplicate ids and similar non-fatal findings
}

// Load resolves a bank using the fallback chain: a structured JSON file,
// then a CSV file, then the built-in starter set. Missing or unusable
// files fall through silently; the chain never fails, it only degrades.
func Load(jsonPath, csvPath string) LoadResult {
	if jsonPath != "" {
		if data, err := os.ReadFile(jsonPath); err == nil {
			if qs, err := ParseJSON(data); err == nil && len(qs) > 0 {
				return LoadResult{Questions: qs, Source: "json", Path: jsonPath, Warnings: duplicateIDWarnings(qs)}
			}
		}
	}
	if csvPath != "" {
		if data, err := os.ReadFile(csvPath); err == nil {
			if qs := ParseCSV(string(data)); len(qs) > 0 {
				return LoadResult{Questions: qs, Source: "csv", Path: csvPath, Warnings: duplicateIDWarnings(qs)}
			}
		}
	}
	return LoadResult{Questions: Starter(), Source: "starter"}
}

// LoadFile parses a single user-supplied bank file, picking the format
// from the extension (.json, anything else is treated as CSV). Unlike
// Load it reports failure instead of falling back, so a bad upload never
// replaces a working bank.
func LoadFile(path string) (LoadResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return LoadResult{}, fmt.Errorf("read bank file: %w", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		qs, err := ParseJSON(data)
		if err != nil {
			return LoadResult{}, err
		}
		if len(qs) == 0 {
			return LoadResult{}, fmt.Errorf("no usable questions in %s", path)
		}
		return LoadResult{Questions: qs, Source: "json", Path: path, Warnings: duplicateIDWarnings(qs)}, nil
	}

	qs := ParseCSV(string(data))
	if len(qs) == 0 {
		return LoadResult{}, fmt.Errorf("no usable questions in %s (missing required columns?)", path)
	}
	return LoadResult{Questions: qs, Source: "csv", Path: path, Warnings: duplicateIDWarnings(qs)}, nil
}

// Filter returns the questions whose domain is in the given set. A nil
// or empty set means no filtering.
func Filter(qs []Question, domains []Domain) []Question {
	if len(domains) == 0 {
		return qs
	}
	allowed := make(map[Domain]bool, len(domains))
	for _, d := range domains {
		allowed[d] = true
	}
	var out []Question
	for _, q := range qs {
		if allowed[q.Domain] {
			out = append(out, q)
		}
	}
	return out
}

// duplicateIDWarnings reports ids that appear more than once. Duplicates
// are not rejected, but they corrupt result keying when a bank mixes
// auto-generated ids from separate files, so the loader surfaces them.
func duplicateIDWarnings(qs []Question) []string {
	seen := make(map[string]int, len(qs))
	for _, q := range qs {
		seen[q.ID]++
	}
	var warnings []string
	for _, q := range qs {
		if seen[q.ID] > 1 {
			warnings = append(warnings, fmt.Sprintf("duplicate question id %q (%d occurrences)", q.ID, seen[q.ID]))
			seen[q.ID] = 0 // report once
		}
	}
	return warnings
}
