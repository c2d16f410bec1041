package utils

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIContentClient implements ContentGeneratorInterface with the chat
// completions API.
type OpenAIContentClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIContentClient(apiKey, model string) *OpenAIContentClient {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIContentClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAIContentClient) GenerateContentJSON(ctx context.Context, sourceText string, contentType string, titleHint string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.3,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You convert documents into sellable web content. Always answer with a single JSON object.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: GenerationPrompt(sourceText, contentType, titleHint),
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
