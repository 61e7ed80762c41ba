package services

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	apperrors "github.com/vorathons/memory-mate/internal/errors"
)

// OpenAIProvider is the alternate companion backend, selected with
// AI_PROVIDER=openai. The composed prompt travels as a single user
// message, the same shape the Gemini provider receives.
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

func NewOpenAIProvider(apiKey string) *OpenAIProvider {
	return &OpenAIProvider{
		client: openai.NewClient(apiKey),
		model:  openai.GPT4oMini,
	}
}

func (p *OpenAIProvider) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := p.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: p.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
		},
	)
	if err != nil {
		return "", apperrors.NewExternalAPIError(err, "OpenAI")
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from model")
	}
	return resp.Choices[0].Message.Content, nil
}
