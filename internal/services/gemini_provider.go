package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	apperrors "github.com/vorathons/memory-mate/internal/errors"
)

const geminiModel = "gemini-1.5-flash"

// GeminiProvider backs the chat companion with Google's hosted models.
// It also serves as the speech recognizer: Gemini accepts audio parts,
// so voice notes are transcribed through the same client.
type GeminiProvider struct {
	client *genai.Client
}

func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiProvider{client: client}, nil
}

func (p *GeminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	model := p.client.GenerativeModel(geminiModel)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", apperrors.NewExternalAPIError(err, "Gemini")
	}
	return firstText(resp)
}

// Supported implements domain.Recognizer.
func (p *GeminiProvider) Supported() bool { return true }

// Transcribe sends captured audio to Gemini and returns the final
// transcript, nothing else.
func (p *GeminiProvider) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	model := p.client.GenerativeModel(geminiModel)

	prompt := `Transcribe the spoken Thai in this audio clip.
Return ONLY the transcript text, no explanations, no punctuation commentary.`

	blob := genai.Blob{MIMEType: mimeType, Data: audio}
	resp, err := model.GenerateContent(ctx, blob, genai.Text(prompt))
	if err != nil {
		return "", apperrors.NewExternalAPIError(err, "Gemini")
	}

	text, err := firstText(resp)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func (p *GeminiProvider) Close() error {
	return p.client.Close()
}

func firstText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from model")
	}
	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("unexpected response part type %T", resp.Candidates[0].Content.Parts[0])
	}
	return string(text), nil
}
