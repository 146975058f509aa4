package engine

import (
	"context"
	"time"

	"github.com/anatolykoptev/go-kit/llm"
)

// Config holds all engine configuration, injected from main.
type Config struct {
	LLMAPIKey          string
	LLMAPIKeyFallbacks []string
	LLMAPIBase         string
	LLMModel           string
	MaxParallel        int     // bounded translation fan-out (default 10)
	TranslateQPS       float64 // 0 = no rate limit beyond the pool bound

	ClientSecretsFile string // OAuth installed-app credentials
	TokenFile         string // cached OAuth token

	CacheMaxEntries      int
	CacheCleanupInterval time.Duration

	LLMClient *llm.Client
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages (publish).
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	cfg = c
	Cfg = &cfg
}

// Generate sends a prompt to the configured LLM client.
// It is the production GenerateFunc; tests substitute fakes.
func Generate(ctx context.Context, prompt string) (string, error) {
	return cfg.LLMClient.Complete(ctx, "", prompt)
}
