package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config stores runtime configuration loaded from environment variables.
type Config struct {
	APIKey   string
	Endpoint string
	Model    string
}

// Load reads configuration from the environment, defaulting to the
// OpenAI-compatible endpoint of a local Ollama server. Local servers accept
// any API key, so the placeholder default works out of the box.
func Load() Config {
	// Load .env file if it exists (useful for development)
	_ = godotenv.Load()
	return Config{
		APIKey:   getEnv("OPENAI_API_KEY", "ollama"),
		Endpoint: getEnv("OPENAI_API_ENDPOINT", "http://localhost:11434/v1"),
		Model:    getEnv("EXAMGEN_MODEL", "llama3.2"),
	}
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}
