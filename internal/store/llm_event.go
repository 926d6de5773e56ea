package store

import (
	"context"
	"fmt"

	"github.com/linwei/studymap/internal/llm"
)

// RecordLLMRequest persists one LLM call, satisfying llm.RequestRecorder so
// the Store can be plugged into the provider middleware directly.
func (s *Store) RecordLLMRequest(ctx context.Context, log llm.RequestLog) error {
	seqNum, err := s.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = s.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(log.Provider).
		SetModel(log.Model).
		SetPurpose(log.Purpose).
		SetInputTokens(log.InputTokens).
		SetOutputTokens(log.OutputTokens).
		SetLatencyMs(log.LatencyMs).
		SetSuccess(log.Success).
		SetErrorMessage(log.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}
