package enrich

import (
	"fmt"
	"strings"

	"github.com/abhisek/pmprep/internal/bank"
)

const systemPrompt = `You are a PMP exam coach. You write concise, accurate
explanations for practice exam questions. Ground your reasoning in the PMBOK
Guide and the PMI Agile Practice Guide. Never reveal uncertainty; if a
question is ambiguous, explain the best defensible answer.`

// buildPrompt renders one question into the user message for enrichment.
func buildPrompt(q bank.Question) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Domain: %s\n", q.Domain)
	fmt.Fprintf(&b, "Question: %s\n\n", q.Prompt)

	letters := []string{"a", "b", "c", "d"}
	for i, c := range q.Choices {
		if i >= len(letters) {
			break
		}
		fmt.Fprintf(&b, "%s) %s\n", letters[i], c)
	}

	if q.CorrectIndex >= 0 && q.CorrectIndex < len(letters) {
		fmt.Fprintf(&b, "\nCorrect answer: %s\n", letters[q.CorrectIndex])
	}

	b.WriteString("\nWrite the explanation for the correct answer and one short rationale per choice.")
	return b.String()
}
