package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Persona for the hosted model. Prices in here are marketing copy; the
// assistant is never a source of truth for quotes.
const systemInstruction = `
You are "Chioma", the virtual assistant for PH Cleaning Pro, a premium cleaning service in Port Harcourt, Nigeria.
Your tone is professional, warm, and helpful.
Currency is Naira (₦).

Services:
- Standard Cleaning: ₦15,000 (Maintenance)
- Deep Cleaning: ₦35,000 (Thorough)
- Move-in/out: ₦45,000 (Empty home)

Neighborhoods: GRA, Trans Amadi, Woji, Peter Odili.

Answer questions about pricing, what's included, and convince them to book.
Keep answers short (under 50 words).
`

type GeminiClient struct {
	client  *genai.Client
	modelID string
}

func NewGeminiClient(ctx context.Context, apiKey, modelID string) (*GeminiClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("assistant: gemini api key is required")
	}
	if strings.TrimSpace(modelID) == "" {
		modelID = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("assistant: failed to create gemini client: %w", err)
	}

	return &GeminiClient{
		client:  client,
		modelID: modelID,
	}, nil
}

func (c *GeminiClient) Reply(ctx context.Context, query string) (string, error) {
	model := c.client.GenerativeModel(c.modelID)
	model.SetTemperature(0.7)
	model.SystemInstruction = genai.NewUserContent(genai.Text(systemInstruction))

	resp, err := model.GenerateContent(ctx, genai.Text(query))
	if err != nil {
		return "", fmt.Errorf("assistant: gemini completion failed: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return "", errors.New("assistant: gemini returned no candidates")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", errors.New("assistant: gemini returned empty content")
	}

	var out strings.Builder
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			out.WriteString(string(text))
		}
	}

	return strings.TrimSpace(out.String()), nil
}

func (c *GeminiClient) Close() error {
	return c.client.Close()
}
