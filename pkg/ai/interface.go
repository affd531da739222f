package ai

import (
	"context"
	"errors"
	"fmt"
)

// CompletionService is the interface for a chat-style text completion
// provider. Implement this interface to add new AI providers.
type CompletionService interface {
	// Complete sends one system message and one user message with
	// deterministic sampling and returns the text of the first choice.
	Complete(ctx context.Context, systemPrompt, userText string) (string, error)
}

// ProviderType represents the AI provider type
type ProviderType string

const (
	ProviderOpenAI ProviderType = "openai"
	ProviderOllama ProviderType = "ollama"
	ProviderGemini ProviderType = "gemini"
)

// ErrNoChoices is returned when the provider answers without a usable choice.
var ErrNoChoices = errors.New("AI response contained no choices")

// NotConfiguredError is returned by a provider that lacks a required credential.
type NotConfiguredError struct {
	Provider   ProviderType
	Credential string
}

func (e *NotConfiguredError) Error() string {
	return fmt.Sprintf("%s not configured", e.Credential)
}

// APIError is a non-2xx answer from a provider.
type APIError struct {
	Provider   ProviderType
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s API error (%d): %s", e.Provider, e.StatusCode, e.Message)
}
