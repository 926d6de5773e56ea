package practicegen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/linwei/studymap/internal/knowledge"
	"github.com/linwei/studymap/internal/llm"
)

// Generator produces practice sheets via the LLM provider.
type Generator struct {
	provider llm.Provider
	config   Config
}

// New creates a Generator with the given provider and config.
func New(provider llm.Provider, cfg Config) *Generator {
	if cfg.Count <= 0 {
		cfg.Count = DefaultConfig().Count
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultConfig().MaxTokens
	}
	return &Generator{provider: provider, config: cfg}
}

// sheetOutput is the raw LLM response before validation.
type sheetOutput struct {
	Questions []Question `json:"questions"`
}

// Generate produces a practice sheet for one knowledge point.
func (g *Generator) Generate(ctx context.Context, point knowledge.Point) (*Sheet, error) {
	ctx = llm.WithPurpose(ctx, "practice-generation")

	req := llm.Request{
		System:      systemPrompt,
		Prompt:      buildPrompt(point, g.config.Count),
		Schema:      SheetSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	raw := extractJSON(resp.Content)
	if err := validateSheet(SheetSchema, raw); err != nil {
		return nil, err
	}

	var out sheetOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}
	if len(out.Questions) == 0 {
		return nil, fmt.Errorf("LLM returned no questions for %q", point.Name)
	}

	return &Sheet{
		PointID:   point.ID,
		PointName: point.Name,
		Subject:   string(point.Subject),
		Grade:     point.Grade,
		Questions: out.Questions,
	}, nil
}

// extractJSON strips a markdown code fence when a model wraps its JSON in
// one despite the schema instruction.
func extractJSON(raw json.RawMessage) json.RawMessage {
	s := strings.TrimSpace(string(raw))
	if !strings.HasPrefix(s, "```") {
		return raw
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	if idx := strings.LastIndex(s, "```"); idx >= 0 {
		s = s[:idx]
	}
	return json.RawMessage(strings.TrimSpace(s))
}
