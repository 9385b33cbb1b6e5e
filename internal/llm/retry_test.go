package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

// fastRetry keeps the backoff waits in the microsecond range so the
// tests run instantly.
func fastRetry(inner Provider) Provider {
	return WithRetry(inner, RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	})
}

func unavailable() MockResponse {
	return MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}}
}

func okJSON() MockResponse {
	return MockResponse{Content: json.RawMessage(`{"ok":true}`)}
}

func TestRetryFirstAttemptSucceeds(t *testing.T) {
	mock := NewMockProvider(okJSON())
	p := fastRetry(mock)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if got := mock.CallCount(); got != 1 {
		t.Fatalf("calls = %d, want 1", got)
	}
}

func TestRetryRecoversFromTransientFailure(t *testing.T) {
	mock := NewMockProvider(unavailable(), okJSON())
	p := fastRetry(mock)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if got := mock.CallCount(); got != 2 {
		t.Fatalf("calls = %d, want 2", got)
	}
}

func TestRetryGivesUpAfterMaxAttempts(t *testing.T) {
	mock := NewMockProvider(unavailable(), unavailable(), unavailable())
	p := fastRetry(mock)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error")
	}
	if got := mock.CallCount(); got != 3 {
		t.Fatalf("calls = %d, want 3", got)
	}
}

func TestRetryDoesNotRetryMaxTokens(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrMaxTokensExceeded{Content: json.RawMessage(`{}`)}})
	p := fastRetry(mock)

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("error type = %T, want *ErrMaxTokensExceeded", err)
	}
	if got := mock.CallCount(); got != 1 {
		t.Fatalf("calls = %d, want 1", got)
	}
}

func TestRetryInvalidResponseOnlyOnce(t *testing.T) {
	bad := MockResponse{Err: &ErrInvalidResponse{Content: json.RawMessage(`bad`), Err: errors.New("bad")}}
	mock := NewMockProvider(bad, bad, okJSON()) // third response must not be reached
	p := fastRetry(mock)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error")
	}
	if got := mock.CallCount(); got != 2 {
		t.Fatalf("calls = %d, want 2 (one retry)", got)
	}
}

func TestRetryStopsOnCanceledContext(t *testing.T) {
	mock := NewMockProvider(unavailable(), unavailable(), okJSON())
	p := fastRetry(mock)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.Generate(ctx, Request{}); err == nil {
		t.Fatal("expected error")
	}
}

func TestRetryHonorsRetryAfter(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{RetryAfter: time.Millisecond, Err: errors.New("429")}},
		okJSON(),
	)
	p := fastRetry(mock)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if got := mock.CallCount(); got != 2 {
		t.Fatalf("calls = %d, want 2", got)
	}
}

func TestRetryDelegatesModelID(t *testing.T) {
	p := fastRetry(NewMockProvider())
	if got := p.ModelID(); got != "mock" {
		t.Fatalf("model = %q, want %q", got, "mock")
	}
}
