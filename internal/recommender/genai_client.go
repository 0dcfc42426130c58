package recommender

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/nicholas-gates/book-recommendations/internal/recommender/deps"
)

// GeminiClient implements deps.LLMClient using the Gemini API
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a new GeminiClient
func NewGeminiClient(client *genai.Client, model string) *GeminiClient {
	return &GeminiClient{
		client: client,
		model:  model,
	}
}

// GenerateStructured generates JSON constrained to the request schema
func (c *GeminiClient) GenerateStructured(ctx context.Context, req deps.StructuredRequest) ([]byte, error) {
	config := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(req.Temperature),
		MaxOutputTokens:  req.MaxOutputTokens,
		ResponseMIMEType: "application/json",
		ResponseSchema:   req.Schema,
	}
	if req.SystemPrompt != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.SystemPrompt}},
		}
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: req.UserPrompt}},
		},
	}, config)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("no candidates returned")
	}

	// Extract text from response
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.Text != "" {
			return []byte(part.Text), nil
		}
	}

	return nil, fmt.Errorf("no text parts in response")
}

// Verify that GeminiClient implements LLMClient
var _ deps.LLMClient = (*GeminiClient)(nil)
