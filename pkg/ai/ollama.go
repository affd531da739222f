package ai

import (
	"context"
	"net/http"
	"strings"
)

// OllamaService implements CompletionService using a local Ollama server
type OllamaService struct {
	baseURL string
	model   string
	client  *http.Client
}

type ollamaChatRequest struct {
	Model    string                 `json:"model"`
	Messages []chatMessage          `json:"messages"`
	Stream   bool                   `json:"stream"`
	Options  map[string]interface{} `json:"options"`
}

type ollamaChatResponse struct {
	Message *chatMessage `json:"message"`
	Done    bool         `json:"done"`
}

// NewOllamaService creates a new Ollama service
func NewOllamaService(baseURL, model string) *OllamaService {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	if model == "" {
		model = "llama3"
	}
	return &OllamaService{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		client:  &http.Client{},
	}
}

// Complete implements CompletionService
func (o *OllamaService) Complete(ctx context.Context, systemPrompt, userText string) (string, error) {
	payload := ollamaChatRequest{
		Model: o.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userText},
		},
		Stream: false,
		Options: map[string]interface{}{
			"temperature": 0,
		},
	}

	var result ollamaChatResponse
	if err := postJSON(ctx, o.client, ProviderOllama, o.baseURL+"/api/chat", nil, payload, &result); err != nil {
		return "", err
	}

	if result.Message == nil {
		return "", ErrNoChoices
	}
	return strings.TrimSpace(result.Message.Content), nil
}
