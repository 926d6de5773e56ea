package llm

import (
	"context"
	"encoding/json"
)

// Provider is the fixed contract with the text-generation service. Every call
// is single-turn: one prompt in, one JSON document out. Consumers that need
// structured output attach a Schema and validate the returned document
// themselves.
type Provider interface {
	// Generate sends one prompt and returns the raw response content.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured with.
	ModelID() string
}

// Request describes a single-turn generation call.
type Request struct {
	// System sets the model's role and constraints. Optional.
	System string

	// Prompt is the user message.
	Prompt string

	// Schema, when set, asks the provider to use its native structured
	// output mechanism so Content is a JSON document of this shape.
	Schema *Schema

	// MaxTokens bounds the response length.
	MaxTokens int

	// Temperature controls randomness (0.0-1.0, default 0 = deterministic).
	Temperature float64
}

// Schema names a JSON Schema used for structured output.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name for
	// OpenAI). Kebab-case, e.g. "practice-sheet".
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response is the model's output for one request.
type Response struct {
	// Content is the generated text. With a Schema it is the JSON document;
	// without one it is raw text.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage tracks token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
