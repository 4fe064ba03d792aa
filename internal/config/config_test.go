package config

import "testing"

func TestGetEnv(t *testing.T) {
	t.Run("Set", func(t *testing.T) {
		t.Setenv("EXAMGEN_TEST_KEY", "value")
		if got := getEnv("EXAMGEN_TEST_KEY", "fallback"); got != "value" {
			t.Errorf("getEnv = %q, want %q", got, "value")
		}
	})

	t.Run("Unset", func(t *testing.T) {
		if got := getEnv("EXAMGEN_TEST_MISSING", "fallback"); got != "fallback" {
			t.Errorf("getEnv = %q, want %q", got, "fallback")
		}
	})

	t.Run("Empty", func(t *testing.T) {
		t.Setenv("EXAMGEN_TEST_EMPTY", "")
		if got := getEnv("EXAMGEN_TEST_EMPTY", "fallback"); got != "fallback" {
			t.Errorf("empty value should fall back, got %q", got)
		}
	})
}

func TestLoad(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("OPENAI_API_ENDPOINT", "")
	t.Setenv("EXAMGEN_MODEL", "")

	cfg := Load()
	if cfg.Endpoint != "http://localhost:11434/v1" {
		t.Errorf("default endpoint = %q", cfg.Endpoint)
	}
	if cfg.Model != "llama3.2" {
		t.Errorf("default model = %q", cfg.Model)
	}
	if cfg.APIKey != "ollama" {
		t.Errorf("default api key = %q", cfg.APIKey)
	}

	t.Setenv("EXAMGEN_MODEL", "qwen2.5")
	if cfg := Load(); cfg.Model != "qwen2.5" {
		t.Errorf("model override = %q, want %q", cfg.Model, "qwen2.5")
	}
}
