package ai

import (
	"context"
	"os"
)

// Options tune a single completion call.
type Options struct {
	Model       string
	MaxTokens   int
	Temperature float64
}

// Completer is the text-completion capability the scoring layer consumes.
// Implementations must return an error on any network, quota or decoding
// problem; callers decide how to degrade.
type Completer interface {
	Complete(ctx context.Context, prompt string, opts Options) (string, error)
}

// FromEnv builds a Completer from AI_PROVIDER: "gemini" uses the Gemini API,
// anything else falls back to a local Ollama instance.
func FromEnv() Completer {
	if os.Getenv("AI_PROVIDER") == "gemini" {
		return NewGeminiClient(os.Getenv("GEMINI_API_KEY"), os.Getenv("GEMINI_MODEL"))
	}

	host := os.Getenv("OLLAMA_HOST")
	model := os.Getenv("OLLAMA_MODEL")
	return NewOllamaClient(host, model)
}
