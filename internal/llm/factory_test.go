package llm

import (
	"context"
	"strings"
	"testing"
)

func TestNewProviderUnknown(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "carrier-pigeon"

	_, err := NewProvider(context.Background(), cfg, nil)
	if err == nil || !strings.Contains(err.Error(), "unknown LLM provider") {
		t.Errorf("err = %v, want unknown provider", err)
	}
}

func TestNewProviderMock(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"

	p, err := NewProvider(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	if p.ModelID() != "mock" {
		t.Errorf("model = %q, want mock", p.ModelID())
	}
}

func TestNewProviderFromEnvRejectsMissingKey(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("STUDYMAP_LLM_PROVIDER", "gemini")

	if _, err := NewProviderFromEnv(context.Background(), nil); err == nil {
		t.Error("expected validation error for keyless provider")
	}
}

func TestNewProviderFromEnvMock(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("STUDYMAP_LLM_PROVIDER", "mock")

	p, err := NewProviderFromEnv(context.Background(), nil)
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	if p.ModelID() != "mock" {
		t.Errorf("model = %q, want mock", p.ModelID())
	}
}
