// go_publish — multilingual YouTube publishing pipeline.
//
// Translates video metadata into 70+ languages, uploads the video with
// per-language localizations, and batches caption uploads. Runs as a CLI
// (run, translate, upload, captions) or as an MCP server (serve).
package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-kit/llm"

	"github.com/anatolykoptev/go_publish/internal/engine"
)

var version = "dev"

const usage = `usage: go_publish <command> [flags]

commands:
  run        full pipeline: translate, upload, localize, captions
  translate  translate title/description into target languages
  upload     upload a video, or update localizations on an existing one
  captions   upload every caption file in a directory
  serve      run as an MCP server
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	var err error
	switch cmd := os.Args[1]; cmd {
	case "run":
		err = cmdRun(os.Args[2:])
	case "translate":
		err = cmdTranslate(os.Args[2:])
	case "upload":
		err = cmdUpload(os.Args[2:])
	case "captions":
		err = cmdCaptions(os.Args[2:])
	case "serve":
		err = cmdServe(os.Args[2:])
	case "-h", "--help", "help":
		fmt.Print(usage)
		return
	default:
		fmt.Fprintf(os.Stderr, "go_publish: unknown command %q\n\n%s", cmd, usage)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// defaultModel matches the original pipeline's generation model.
const defaultModel = "gemini-2.5-flash-lite-preview-06-17"

// initEngine wires engine configuration from the environment. model overrides
// LLM_MODEL when non-empty (job config or --model flag). needLLM gates the
// API-key requirement: upload-only and caption-only paths never generate text.
func initEngine(model string, needLLM bool) error {
	apiKey := env.Str("LLM_API_KEY", "")
	if apiKey == "" {
		apiKey = env.Str("GEMINI_API_KEY", "")
	}
	if needLLM && apiKey == "" {
		return fmt.Errorf("config: LLM_API_KEY (or GEMINI_API_KEY) is not set")
	}
	if model == "" {
		model = env.Str("LLM_MODEL", defaultModel)
	}

	c := engine.Config{
		LLMAPIKey:            apiKey,
		LLMAPIKeyFallbacks:   env.List("LLM_API_KEY_FALLBACKS", ""),
		LLMAPIBase:           env.Str("LLM_API_BASE", "https://generativelanguage.googleapis.com/v1beta/openai"),
		LLMModel:             model,
		MaxParallel:          env.Int("MAX_PARALLEL", engine.DefaultMaxParallel),
		TranslateQPS:         env.Float("TRANSLATE_QPS", 0),
		ClientSecretsFile:    env.Str("CLIENT_SECRETS_FILE", "client_secrets.json"),
		TokenFile:            env.Str("TOKEN_FILE", "token.json"),
		CacheMaxEntries:      env.Int("CACHE_MAX_ENTRIES", 1000),
		CacheCleanupInterval: env.Duration("CACHE_CLEANUP_INTERVAL", 300*time.Second),
	}
	if apiKey != "" {
		c.LLMClient = llm.NewClient(c.LLMAPIBase, c.LLMAPIKey, c.LLMModel,
			llm.WithFallbackKeys(c.LLMAPIKeyFallbacks),
			llm.WithTemperature(env.Float("LLM_TEMPERATURE", 0.3)),
			llm.WithHTTPClient(&http.Client{Timeout: 60 * time.Second}),
		)
	}

	engine.Init(c)
	return nil
}
