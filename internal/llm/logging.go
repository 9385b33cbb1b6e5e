package llm

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/pmprep/internal/store"
)

// RequestLog receives a record of every LLM API call.
type RequestLog interface {
	AppendLLMRequest(ctx context.Context, data store.LLMRequestData) error
}

type ctxKey int

const purposeKey ctxKey = iota

// WithPurpose tags the context with what the call is for ("enrich",
// "check"). The logging decorator records it with each request.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom reads the tag back, defaulting to "unknown".
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeKey).(string); ok {
		return p
	}
	return "unknown"
}

// LoggingProvider is a decorator that records every request to the
// request log.
type LoggingProvider struct {
	inner Provider
	name  string
	log   RequestLog
}

// WithLogging wraps a Provider with request logging. name identifies
// the vendor ("anthropic", "openai", ...) in the log.
func WithLogging(p Provider, name string, log RequestLog) Provider {
	return &LoggingProvider{inner: p, name: name, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	data := store.LLMRequestData{
		Provider:  l.name,
		Model:     l.inner.ModelID(),
		Purpose:   PurposeFrom(ctx),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.Model = resp.Model
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// A logging failure must not fail the request itself.
	if logErr := l.log.AppendLLMRequest(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log LLM request: %v\n", logErr)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
