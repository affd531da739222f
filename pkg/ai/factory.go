package ai

import (
	"context"
	"fmt"
	"log"
)

// Config holds AI provider configuration
type Config struct {
	Provider ProviderType // "openai", "ollama" or "gemini"

	// OpenAI config
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string // e.g., "https://api.openai.com/v1"

	// Ollama config
	OllamaBaseURL string // e.g., "http://localhost:11434"
	OllamaModel   string // e.g., "llama3", "mistral"

	// Gemini config
	GeminiAPIKey string
	GeminiModel  string
}

// Info describes the selected provider without exposing credentials.
type Info struct {
	Provider   ProviderType `json:"provider"`
	Model      string       `json:"model"`
	Configured bool         `json:"configured"`
}

// NewCompletionService creates a CompletionService based on the config.
// A provider whose credential is missing still yields a service: every call
// on it fails with *NotConfiguredError and makes no network request. Only an
// unknown provider name is an error.
func NewCompletionService(cfg Config) (CompletionService, error) {
	switch cfg.Provider {
	case ProviderOpenAI, "":
		if cfg.OpenAIAPIKey == "" {
			log.Println("[AI] OPENAI_API_KEY not set, chat event creation will report a configuration error")
			return unconfigured{err: &NotConfiguredError{Provider: ProviderOpenAI, Credential: "OpenAI API key"}}, nil
		}
		return NewOpenAIService(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL), nil

	case ProviderOllama:
		return NewOllamaService(cfg.OllamaBaseURL, cfg.OllamaModel), nil

	case ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			log.Println("[AI] GEMINI_API_KEY not set, chat event creation will report a configuration error")
			return unconfigured{err: &NotConfiguredError{Provider: ProviderGemini, Credential: "Gemini API key"}}, nil
		}
		return NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiModel), nil

	default:
		return nil, fmt.Errorf("unknown AI provider %q", cfg.Provider)
	}
}

// Describe reports which provider and model cfg selects.
func Describe(cfg Config) Info {
	switch cfg.Provider {
	case ProviderOllama:
		return Info{Provider: ProviderOllama, Model: orDefault(cfg.OllamaModel, "llama3"), Configured: true}
	case ProviderGemini:
		return Info{Provider: ProviderGemini, Model: orDefault(cfg.GeminiModel, "gemini-2.5-flash"), Configured: cfg.GeminiAPIKey != ""}
	default:
		return Info{Provider: ProviderOpenAI, Model: orDefault(cfg.OpenAIModel, "gpt-3.5-turbo"), Configured: cfg.OpenAIAPIKey != ""}
	}
}

type unconfigured struct {
	err error
}

func (u unconfigured) Complete(ctx context.Context, systemPrompt, userText string) (string, error) {
	return "", u.err
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
