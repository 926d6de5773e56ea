package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

// fastRetry keeps test backoffs negligible.
func fastRetry() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Microsecond,
		MaxWait:     time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetryRecoversFromTransientFailures(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrUnavailable{}},
		MockResponse{Err: &ErrRateLimit{RetryAfter: time.Microsecond}},
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)
	p := WithRetry(mock, fastRetry())

	resp, err := p.Generate(context.Background(), Request{Prompt: "hi"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Errorf("content = %s", resp.Content)
	}
	if mock.CallCount() != 3 {
		t.Errorf("calls = %d, want 3", mock.CallCount())
	}
}

func TestRetryGivesUpAfterMaxAttempts(t *testing.T) {
	mock := NewMockProvider() // empty queue: every call is ErrUnavailable
	p := WithRetry(mock, fastRetry())

	_, err := p.Generate(context.Background(), Request{Prompt: "hi"})
	var unavail *ErrUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
	if mock.CallCount() != 3 {
		t.Errorf("calls = %d, want 3", mock.CallCount())
	}
}

func TestRetryStopsOnContextErrors(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: context.Canceled},
		MockResponse{Content: json.RawMessage(`{}`)},
	)
	p := WithRetry(mock, fastRetry())

	_, err := p.Generate(context.Background(), Request{Prompt: "hi"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d, want 1 (cancellation must not be retried)", mock.CallCount())
	}
}

func TestRetryStopsOnRejectedRequests(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrInvalidRequest{Err: errors.New("invalid x-api-key")}},
		MockResponse{Content: json.RawMessage(`{}`)},
	)
	p := WithRetry(mock, fastRetry())

	_, err := p.Generate(context.Background(), Request{Prompt: "hi"})
	var inv *ErrInvalidRequest
	if !errors.As(err, &inv) {
		t.Fatalf("err = %v, want ErrInvalidRequest", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d, want 1 (a rejected request must not be retried)", mock.CallCount())
	}
}

func TestBackoffHonorsRateLimitHint(t *testing.T) {
	r := &retryProvider{cfg: fastRetry()}

	hint := 42 * time.Millisecond
	got := r.backoff(0, &ErrRateLimit{RetryAfter: hint})
	if got != hint {
		t.Errorf("backoff = %v, want the provider hint %v", got, hint)
	}
}

func TestBackoffCappedWithJitter(t *testing.T) {
	r := &retryProvider{cfg: RetryConfig{
		MaxAttempts: 5,
		InitialWait: time.Second,
		MaxWait:     2 * time.Second,
		Multiplier:  10,
	}}

	// Attempt 3 would schedule 1000s uncapped; jitter stays within ±20% of
	// the cap.
	got := r.backoff(3, &ErrUnavailable{})
	if got > 2400*time.Millisecond {
		t.Errorf("backoff = %v, exceeds cap plus jitter", got)
	}
	if got < 1600*time.Millisecond {
		t.Errorf("backoff = %v, below cap minus jitter", got)
	}
}

func TestStatusErrorClassification(t *testing.T) {
	cases := []struct {
		status    int
		retryable bool
	}{
		{401, false}, // bad credentials
		{404, false}, // unknown model
		{429, true},  // rate limit
		{500, true},  // provider outage
		{503, true},
	}
	for _, tc := range cases {
		err := mapStatusError(tc.status, errors.New("api error"))
		if got := retryable(err); got != tc.retryable {
			t.Errorf("status %d: retryable = %v, want %v (%v)", tc.status, got, tc.retryable, err)
		}
	}
}

func TestRetryPreservesModelID(t *testing.T) {
	p := WithRetry(NewMockProvider(), fastRetry())
	if p.ModelID() != "mock" {
		t.Errorf("model = %q, want mock", p.ModelID())
	}
}
