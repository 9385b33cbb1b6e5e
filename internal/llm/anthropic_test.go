package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// stubAnthropic points an AnthropicProvider at a local test server.
func stubAnthropic(t *testing.T, handler http.HandlerFunc) *AnthropicProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := anthropic.NewClient(
		option.WithAPIKey("test-key"),
		option.WithBaseURL(server.URL),
	)
	return &AnthropicProvider{client: &client, model: "claude-sonnet-4-20250514"}
}

func TestAnthropicGenerate(t *testing.T) {
	p := stubAnthropic(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":   "msg_test",
			"type": "message",
			"role": "assistant",
			"content": []map[string]any{
				{"type": "text", "text": `{"explanation":"The critical path drives schedule risk."}`},
			},
			"model":       "claude-sonnet-4-20250514",
			"stop_reason": "end_turn",
			"usage": map[string]any{
				"input_tokens":  50,
				"output_tokens": 30,
			},
		})
	})

	resp, err := p.Generate(context.Background(), Request{
		System:    "You are a PMP exam coach.",
		Messages:  []Message{{Role: RoleUser, Content: "Explain why option b is correct."}},
		MaxTokens: 256,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := resp.Usage.InputTokens, 50; got != want {
		t.Errorf("input tokens = %d, want %d", got, want)
	}
	if resp.StopReason != "end" {
		t.Errorf("stop reason = %q, want %q", resp.StopReason, "end")
	}
}

func TestAnthropicErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		errType string
		check   func(t *testing.T, err error)
	}{
		{
			name:    "rate limited",
			status:  http.StatusTooManyRequests,
			errType: "rate_limit_error",
			check: func(t *testing.T, err error) {
				var rl *ErrRateLimit
				if !errors.As(err, &rl) {
					t.Fatalf("error type = %T (%v), want *ErrRateLimit", err, err)
				}
			},
		},
		{
			name:    "server error",
			status:  http.StatusInternalServerError,
			errType: "api_error",
			check: func(t *testing.T, err error) {
				var unavail *ErrProviderUnavailable
				if !errors.As(err, &unavail) {
					t.Fatalf("error type = %T (%v), want *ErrProviderUnavailable", err, err)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := stubAnthropic(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				json.NewEncoder(w).Encode(map[string]any{
					"type": "error",
					"error": map[string]any{
						"type":    tt.errType,
						"message": "upstream failure",
					},
				})
			})
			_, err := p.Generate(context.Background(), Request{
				Messages:  []Message{{Role: RoleUser, Content: "test"}},
				MaxTokens: 100,
			})
			if err == nil {
				t.Fatal("expected error")
			}
			tt.check(t, err)
		})
	}
}

func TestAnthropicModelID(t *testing.T) {
	p := &AnthropicProvider{model: "claude-sonnet-4-20250514"}
	if got := p.ModelID(); got != "claude-sonnet-4-20250514" {
		t.Fatalf("model = %q, want %q", got, "claude-sonnet-4-20250514")
	}
}

func TestAnthropicAliases(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"claude-sonnet", "claude-sonnet-4-20250514"},
		{"claude-haiku", "claude-haiku-4-5-20251001"},
		{"claude-sonnet-4-20250514", "claude-sonnet-4-20250514"}, // pass-through
	}
	for _, tt := range tests {
		if got := resolveModel(tt.in, anthropicAliases); got != tt.want {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
