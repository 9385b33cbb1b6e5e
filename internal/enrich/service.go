// Package enrich fills in missing explanations and per-choice rationales
// on question banks using an LLM provider.
package enrich

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/pmprep/internal/bank"
	"github.com/abhisek/pmprep/internal/llm"
)

const maxResponseTokens = 1024

// Service generates enrichments through a configured provider.
type Service struct {
	provider llm.Provider
	usage    llm.Usage
}

// NewService creates an enrichment service.
func NewService(p llm.Provider) *Service {
	return &Service{provider: p}
}

// Usage reports token consumption accumulated across the run.
func (s *Service) Usage() llm.Usage {
	return s.usage
}

// ModelID exposes the underlying provider's model for cost reporting.
func (s *Service) ModelID() string {
	return s.provider.ModelID()
}

// EnrichQuestion requests an explanation and rationales for one question.
func (s *Service) EnrichQuestion(ctx context.Context, q bank.Question) (*Enrichment, error) {
	ctx = llm.WithPurpose(ctx, "enrich")

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildPrompt(q)},
		},
		Schema:    enrichmentSchema,
		MaxTokens: maxResponseTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("enrich %s: %w", q.ID, err)
	}

	s.usage.InputTokens += resp.Usage.InputTokens
	s.usage.OutputTokens += resp.Usage.OutputTokens
	s.usage.TotalTokens += resp.Usage.TotalTokens

	var e Enrichment
	if err := json.Unmarshal(resp.Content, &e); err != nil {
		return nil, fmt.Errorf("enrich %s: decode response: %w", q.ID, err)
	}
	return &e, nil
}

// Progress reports one processed question during a bank run.
type Progress struct {
	Question bank.Question
	Enriched bool
	Err      error
}

// EnrichBank fills in empty Explanation fields in place, skipping
// questions that already have one. A failing question is reported through
// onProgress and skipped; the run continues. Returns the number of
// questions enriched.
func (s *Service) EnrichBank(ctx context.Context, qs []bank.Question, onProgress func(Progress)) (int, error) {
	enriched := 0
	for i := range qs {
		if err := ctx.Err(); err != nil {
			return enriched, err
		}
		if qs[i].Explanation != "" {
			continue
		}

		e, err := s.EnrichQuestion(ctx, qs[i])
		if err != nil {
			if onProgress != nil {
				onProgress(Progress{Question: qs[i], Err: err})
			}
			continue
		}

		qs[i].Explanation = e.Explanation
		if len(e.Rationales) == len(qs[i].Choices) {
			qs[i].Rationales = e.Rationales
		}
		enriched++
		if onProgress != nil {
			onProgress(Progress{Question: qs[i], Enriched: true})
		}
	}
	return enriched, nil
}
