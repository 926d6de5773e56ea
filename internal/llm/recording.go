package llm

import (
	"context"
	"fmt"
	"os"
	"time"
)

// RequestLog captures one LLM call for durable telemetry.
type RequestLog struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// RequestRecorder persists request logs. The store package implements this.
type RequestRecorder interface {
	RecordLLMRequest(ctx context.Context, log RequestLog) error
}

// recordingProvider records every call through the wrapped provider.
type recordingProvider struct {
	inner    Provider
	recorder RequestRecorder
}

// WithRecording wraps a Provider with request recording.
func WithRecording(p Provider, recorder RequestRecorder) Provider {
	return &recordingProvider{inner: p, recorder: recorder}
}

func (r *recordingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := r.inner.Generate(ctx, req)

	log := RequestLog{
		Provider:  r.inner.ModelID(),
		Model:     r.inner.ModelID(),
		Purpose:   PurposeFrom(ctx),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if resp != nil {
		log.InputTokens = resp.Usage.InputTokens
		log.OutputTokens = resp.Usage.OutputTokens
		log.Model = resp.Model
	}
	if err != nil {
		log.ErrorMessage = err.Error()
	}

	// A recording failure must not fail the request itself.
	if recErr := r.recorder.RecordLLMRequest(ctx, log); recErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record LLM request: %v\n", recErr)
	}

	return resp, err
}

func (r *recordingProvider) ModelID() string {
	return r.inner.ModelID()
}

type purposeKey struct{}

// WithPurpose tags a context with the reason for upcoming LLM calls, so the
// request log can attribute usage.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom extracts the purpose tag, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeKey{}).(string); ok && p != "" {
		return p
	}
	return "unknown"
}
