package ai

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

const geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// GeminiService implements CompletionService using the Gemini generateContent API
type GeminiService struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	SystemInstruction geminiContent          `json:"systemInstruction"`
	Contents          []geminiContent        `json:"contents"`
	GenerationConfig  map[string]interface{} `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func NewGeminiService(apiKey, model string) *GeminiService {
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &GeminiService{
		apiKey:  apiKey,
		model:   model,
		baseURL: geminiBaseURL,
		client:  &http.Client{},
	}
}

// Complete implements CompletionService
func (g *GeminiService) Complete(ctx context.Context, systemPrompt, userText string) (string, error) {
	endpoint := g.baseURL + "/models/" + url.PathEscape(g.model) + ":generateContent"
	// Header rather than ?key= so transport errors never echo the key.
	headers := map[string]string{"x-goog-api-key": g.apiKey}

	payload := geminiRequest{
		SystemInstruction: geminiContent{Parts: []geminiPart{{Text: systemPrompt}}},
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: userText}}},
		},
		GenerationConfig: map[string]interface{}{
			"temperature": 0,
		},
	}

	var result geminiResponse
	if err := postJSON(ctx, g.client, ProviderGemini, endpoint, headers, payload, &result); err != nil {
		return "", err
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", ErrNoChoices
	}
	return strings.TrimSpace(result.Candidates[0].Content.Parts[0].Text), nil
}
