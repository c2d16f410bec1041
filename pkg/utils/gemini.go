package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiContentClient implements ContentGeneratorInterface using Google's
// Gemini models.
type GeminiContentClient struct {
	client *genai.Client
	model  string
}

func NewGeminiContentClient(apiKey, model string) (*GeminiContentClient, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiContentClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiContentClient) GenerateContentJSON(ctx context.Context, sourceText string, contentType string, titleHint string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	// Force JSON-only output so no fence stripping is needed downstream.
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.3)
	m.SetTopP(0.5)

	resp, err := m.GenerateContent(ctx, genai.Text(GenerationPrompt(sourceText, contentType, titleHint)))
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}

	if b.Len() == 0 {
		return "", fmt.Errorf("gemini returned no text parts")
	}

	return b.String(), nil
}

func (c *GeminiContentClient) Close() error {
	return c.client.Close()
}

// NewContentGenerator picks a provider implementation from config.
func NewContentGenerator(provider, apiKey, model string) (ContentGeneratorInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIContentClient(apiKey, model), nil
	case "gemini":
		return NewGeminiContentClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}
