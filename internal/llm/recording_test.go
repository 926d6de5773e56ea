package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

// memRecorder collects request logs in memory.
type memRecorder struct {
	logs []RequestLog
	err  error
}

func (r *memRecorder) RecordLLMRequest(_ context.Context, log RequestLog) error {
	r.logs = append(r.logs, log)
	return r.err
}

func TestRecordingSuccess(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{}`),
		Usage:   Usage{InputTokens: 12, OutputTokens: 34},
	})
	rec := &memRecorder{}
	p := WithRecording(mock, rec)

	ctx := WithPurpose(context.Background(), "practice-generation")
	if _, err := p.Generate(ctx, Request{Prompt: "hi"}); err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(rec.logs) != 1 {
		t.Fatalf("logs = %d, want 1", len(rec.logs))
	}
	log := rec.logs[0]
	if !log.Success {
		t.Error("success should be recorded")
	}
	if log.Purpose != "practice-generation" {
		t.Errorf("purpose = %q", log.Purpose)
	}
	if log.InputTokens != 12 || log.OutputTokens != 34 {
		t.Errorf("tokens = %d/%d, want 12/34", log.InputTokens, log.OutputTokens)
	}
}

func TestRecordingFailure(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrUnavailable{Err: errors.New("boom")}})
	rec := &memRecorder{}
	p := WithRecording(mock, rec)

	if _, err := p.Generate(context.Background(), Request{Prompt: "hi"}); err == nil {
		t.Fatal("expected provider error")
	}

	if len(rec.logs) != 1 {
		t.Fatalf("logs = %d, want 1", len(rec.logs))
	}
	log := rec.logs[0]
	if log.Success {
		t.Error("failure should be recorded as such")
	}
	if log.ErrorMessage == "" {
		t.Error("error message should be captured")
	}
	if log.Purpose != "unknown" {
		t.Errorf("untagged context purpose = %q, want unknown", log.Purpose)
	}
}

func TestRecorderFailureDoesNotFailRequest(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	rec := &memRecorder{err: errors.New("db locked")}
	p := WithRecording(mock, rec)

	resp, err := p.Generate(context.Background(), Request{Prompt: "hi"})
	if err != nil {
		t.Fatalf("recording failure leaked into the request: %v", err)
	}
	if resp == nil {
		t.Fatal("response dropped")
	}
}

func TestPurposeRoundTrip(t *testing.T) {
	if got := PurposeFrom(context.Background()); got != "unknown" {
		t.Errorf("bare context purpose = %q, want unknown", got)
	}
	ctx := WithPurpose(context.Background(), "diagnosis")
	if got := PurposeFrom(ctx); got != "diagnosis" {
		t.Errorf("purpose = %q, want diagnosis", got)
	}
}
