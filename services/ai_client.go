package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/generative-ai-go/genai"
)

// GeminiGenerator adapts the Gemini SDK to TextGenerator.
type GeminiGenerator struct {
	Model *genai.GenerativeModel
}

func NewGeminiGenerator(client *genai.Client) *GeminiGenerator {
	return &GeminiGenerator{Model: client.GenerativeModel("gemini-1.5-flash")}
}

func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.Model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				b.WriteString(string(text))
			}
		}
	}
	if b.Len() == 0 {
		return "", errors.New("model returned no text")
	}
	return b.String(), nil
}
