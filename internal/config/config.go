package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the runtime configuration for the SceneSense server and the
// verify CLI. Everything comes from environment variables; a .env file in the
// working directory is honored when present.
type Config struct {
	ListenAddr string `envconfig:"LISTEN_ADDR" default:":8503"`

	// Groq (OpenAI-compatible) completion endpoint.
	GroqAPIKey  string        `envconfig:"GROQ_API_KEY"`
	GroqBaseURL string        `envconfig:"GROQ_BASE_URL" default:"https://api.groq.com/openai/v1"`
	Model       string        `envconfig:"GROQ_MODEL" default:"llama-3.1-8b-instant"`
	Temperature float64       `envconfig:"GROQ_TEMPERATURE" default:"0.35"`
	MaxTokens   int           `envconfig:"GROQ_MAX_TOKENS" default:"1200"`
	Timeout     time.Duration `envconfig:"GROQ_TIMEOUT" default:"60s"`

	// Per-IP rate limit applied to analysis submissions.
	RateLimitRequests int           `envconfig:"RATE_LIMIT_REQUESTS" default:"30"`
	RateLimitWindow   time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m"`

	Env string `envconfig:"ENV" default:"development"`
}

// Load reads the configuration from the environment. The API key is the one
// mandatory setting; its absence is a startup error rather than a per-request
// failure.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.GroqAPIKey == "" {
		return nil, fmt.Errorf("config: GROQ_API_KEY is not set; add it to the environment or a .env file")
	}
	if cfg.Temperature < 0 || cfg.Temperature > 1 {
		return nil, fmt.Errorf("config: GROQ_TEMPERATURE must be in [0,1], got %v", cfg.Temperature)
	}
	if cfg.MaxTokens <= 0 {
		return nil, fmt.Errorf("config: GROQ_MAX_TOKENS must be positive, got %d", cfg.MaxTokens)
	}
	return &cfg, nil
}
