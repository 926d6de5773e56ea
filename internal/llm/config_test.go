package llm

import (
	"strings"
	"testing"
)

// clearProviderEnv blanks every variable ConfigFromEnv reads so ambient shell
// configuration cannot leak into the test.
func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"STUDYMAP_LLM_PROVIDER",
		"STUDYMAP_ANTHROPIC_API_KEY", "STUDYMAP_ANTHROPIC_MODEL",
		"STUDYMAP_OPENAI_API_KEY", "STUDYMAP_OPENAI_MODEL", "STUDYMAP_OPENAI_BASE_URL",
		"STUDYMAP_GEMINI_API_KEY", "STUDYMAP_GEMINI_MODEL",
		"ANTHROPIC_API_KEY", "OPENAI_API_KEY", "GEMINI_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestConfigFromEnvDefaults(t *testing.T) {
	clearProviderEnv(t)

	cfg := ConfigFromEnv()
	if cfg.Provider != "anthropic" {
		t.Errorf("provider = %q, want anthropic", cfg.Provider)
	}
	if cfg.Anthropic.Model != "claude-haiku" {
		t.Errorf("anthropic model = %q, want claude-haiku", cfg.Anthropic.Model)
	}
	if cfg.Retry.MaxAttempts != 3 {
		t.Errorf("retry attempts = %d, want 3", cfg.Retry.MaxAttempts)
	}
}

func TestConfigFromEnvOverrides(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("STUDYMAP_LLM_PROVIDER", "openai")
	t.Setenv("STUDYMAP_OPENAI_API_KEY", "sk-test")
	t.Setenv("STUDYMAP_OPENAI_MODEL", "gpt-test")
	t.Setenv("STUDYMAP_OPENAI_BASE_URL", "http://localhost:8080/v1")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Errorf("provider = %q, want openai", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-test" || cfg.OpenAI.Model != "gpt-test" {
		t.Errorf("openai config = %+v", cfg.OpenAI)
	}
	if cfg.OpenAI.BaseURL != "http://localhost:8080/v1" {
		t.Errorf("base url = %q", cfg.OpenAI.BaseURL)
	}
}

func TestConfigFromEnvKeyFallback(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("ANTHROPIC_API_KEY", "conventional-key")
	t.Setenv("STUDYMAP_GEMINI_API_KEY", "scoped-key")
	t.Setenv("GEMINI_API_KEY", "ignored")

	cfg := ConfigFromEnv()
	if cfg.Anthropic.APIKey != "conventional-key" {
		t.Errorf("anthropic key = %q, want the conventional variable", cfg.Anthropic.APIKey)
	}
	// The scoped variable wins over the conventional one.
	if cfg.Gemini.APIKey != "scoped-key" {
		t.Errorf("gemini key = %q, want scoped-key", cfg.Gemini.APIKey)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "anthropic without key",
			mutate:  func(c *Config) {},
			wantErr: "no API key",
		},
		{
			name:    "anthropic with key",
			mutate:  func(c *Config) { c.Anthropic.APIKey = "k" },
			wantErr: "",
		},
		{
			name: "openai without key",
			mutate: func(c *Config) {
				c.Provider = "openai"
			},
			wantErr: "no API key",
		},
		{
			name:    "mock needs no key",
			mutate:  func(c *Config) { c.Provider = "mock" },
			wantErr: "",
		},
		{
			name:    "unknown provider",
			mutate:  func(c *Config) { c.Provider = "cohere" },
			wantErr: "unknown LLM provider",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
