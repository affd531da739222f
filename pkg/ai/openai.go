package ai

import (
	"context"
	"net/http"
	"strings"
)

// OpenAIService implements CompletionService using the Chat Completions API
type OpenAIService struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"` // no omitempty: 0 must be sent
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content *string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// NewOpenAIService creates a new OpenAI service
func NewOpenAIService(apiKey, model, baseURL string) *OpenAIService {
	if model == "" {
		model = "gpt-3.5-turbo"
	}
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	return &OpenAIService{
		apiKey:  apiKey,
		model:   model,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{},
	}
}

// Complete implements CompletionService
func (o *OpenAIService) Complete(ctx context.Context, systemPrompt, userText string) (string, error) {
	payload := chatCompletionRequest{
		Model: o.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userText},
		},
		Temperature: 0,
	}

	var result chatCompletionResponse
	headers := map[string]string{"Authorization": "Bearer " + o.apiKey}
	if err := postJSON(ctx, o.client, ProviderOpenAI, o.baseURL+"/chat/completions", headers, payload, &result); err != nil {
		return "", err
	}

	if len(result.Choices) == 0 || result.Choices[0].Message.Content == nil {
		return "", ErrNoChoices
	}
	return strings.TrimSpace(*result.Choices[0].Message.Content), nil
}
