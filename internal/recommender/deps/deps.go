package deps

import (
	"context"

	"google.golang.org/genai"
)

// StructuredRequest carries one schema-constrained generation call.
type StructuredRequest struct {
	SystemPrompt    string
	UserPrompt      string
	Schema          *genai.Schema
	Temperature     float32
	MaxOutputTokens int32
}

// LLMClient abstracts schema-constrained LLM API calls
type LLMClient interface {
	// GenerateStructured sends the prompts and returns the raw JSON response,
	// constrained by the backend to the given schema.
	GenerateStructured(ctx context.Context, req StructuredRequest) ([]byte, error)
}
