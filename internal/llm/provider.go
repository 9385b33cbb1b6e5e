// Package llm abstracts the LLM vendors behind a single Provider
// interface with schema-validated JSON responses, retry, and request
// logging. The trainer uses it only for question enrichment; nothing in
// a session depends on it.
package llm

import (
	"context"
	"encoding/json"
)

// Provider is one configured model at one vendor.
type Provider interface {
	// Generate runs a single completion. When the request carries a
	// Schema the returned Content is JSON validated against it;
	// otherwise Content is the raw text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the configured model identifier.
	ModelID() string
}

// Request is everything a Generate call needs.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation so far. Enrichment calls are
	// single-turn, so this usually holds one user message.
	Messages []Message

	// Schema, when set, switches the provider to its native structured
	// output mechanism and validates the result.
	Schema *Schema

	MaxTokens int

	// Temperature in [0,1]; zero means deterministic.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names a JSON Schema the response must satisfy. Name is
// kebab-case ("question-enrichment") and doubles as the vendor-side
// schema/tool name.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Response is a normalized completion.
type Response struct {
	Content json.RawMessage
	Usage   Usage

	// Model is the model that actually served the request, which may be
	// more specific than the configured ID.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage is the token count of one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
