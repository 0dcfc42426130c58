package recommender

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/nicholas-gates/book-recommendations/internal/model"
	"github.com/nicholas-gates/book-recommendations/internal/recommender/deps"
	"github.com/nicholas-gates/book-recommendations/internal/recommender/prompt"
	"github.com/nicholas-gates/book-recommendations/internal/recommender/validation"
)

const (
	// DefaultModel is the Gemini model to use for generation
	DefaultModel = "gemini-2.5-flash"
	// DefaultTemperature is the sampling temperature for generation
	DefaultTemperature float32 = 0.7
	// DefaultMaxOutputTokens bounds the size of a generated set
	DefaultMaxOutputTokens int32 = 4096
)

// Params tunes the generation calls
type Params struct {
	Temperature     float32
	MaxOutputTokens int32
}

// DefaultParams returns the default generation parameters
func DefaultParams() Params {
	return Params{
		Temperature:     DefaultTemperature,
		MaxOutputTokens: DefaultMaxOutputTokens,
	}
}

// BookRecommender turns a reading thought into a validated set of 3-5 books.
// It is stateless; every call is a one-shot request/response transformation.
type BookRecommender struct {
	client        deps.LLMClient
	promptBuilder *prompt.Builder
	pipeline      *validation.Pipeline[*model.BookRecommendationSet]
	params        Params
}

// NewBookRecommender creates a new BookRecommender
func NewBookRecommender(client deps.LLMClient, params Params) *BookRecommender {
	return &BookRecommender{
		client:        client,
		promptBuilder: prompt.NewBuilder(),
		pipeline: validation.NewPipeline[*model.BookRecommendationSet](
			validation.NewCardinalityValidator(),
			validation.NewRequiredFieldsValidator(),
		),
		params: params,
	}
}

// Recommend generates book recommendations for the request.
// Failure modes stay distinct: a *BackendError means the backend was
// unreachable or refused the call; an *InvalidSetError means it answered
// with an unusable set.
func (r *BookRecommender) Recommend(ctx context.Context, req *model.RecommendationRequest) (*model.BookRecommendationSet, error) {
	if req == nil || strings.TrimSpace(req.Thought) == "" {
		return nil, ErrEmptyRequest
	}

	log.Printf("[RECOMMEND] Generating recommendations for thought: %s", truncateForLog(req.Thought, 80))

	raw, err := r.client.GenerateStructured(ctx, deps.StructuredRequest{
		SystemPrompt:    r.promptBuilder.BuildBookSystemPrompt(),
		UserPrompt:      r.promptBuilder.BuildBookUserPrompt(req.Thought),
		Schema:          bookSetSchema(),
		Temperature:     r.params.Temperature,
		MaxOutputTokens: r.params.MaxOutputTokens,
	})
	if err != nil {
		return nil, &BackendError{Err: err}
	}

	var set model.BookRecommendationSet
	if err := json.Unmarshal(raw, &set); err != nil {
		return nil, &InvalidSetError{Reason: fmt.Errorf("malformed backend response: %w", err)}
	}

	if err := r.pipeline.Validate(&set); err != nil {
		return nil, &InvalidSetError{Reason: err}
	}

	log.Printf("[RECOMMEND] Generated %d recommendations", len(set.Recommendations))
	return &set, nil
}

// MediaRecommender turns a chosen book into a validated movie/game/song triple.
type MediaRecommender struct {
	client        deps.LLMClient
	promptBuilder *prompt.Builder
	pipeline      *validation.Pipeline[*model.CrossDomainMediaSet]
	params        Params
}

// NewMediaRecommender creates a new MediaRecommender
func NewMediaRecommender(client deps.LLMClient, params Params) *MediaRecommender {
	return &MediaRecommender{
		client:        client,
		promptBuilder: prompt.NewBuilder(),
		pipeline: validation.NewPipeline[*model.CrossDomainMediaSet](
			validation.NewCompletenessValidator(),
		),
		params: params,
	}
}

// Suggest generates the cross-domain media set for the chosen book.
// The book's reason field is not needed here; the fields the prompt uses
// (title, author, genre, description) must be present.
func (m *MediaRecommender) Suggest(ctx context.Context, book *model.BookRecommendation) (*model.CrossDomainMediaSet, error) {
	if book == nil {
		return nil, ErrNoBookSelected
	}
	if err := validateMediaSeed(book); err != nil {
		return nil, fmt.Errorf("recommender: invalid book selection: %w", err)
	}

	log.Printf("[MEDIA] Generating media suggestions for book: %s", truncateForLog(book.Title, 80))

	raw, err := m.client.GenerateStructured(ctx, deps.StructuredRequest{
		SystemPrompt:    m.promptBuilder.BuildMediaSystemPrompt(),
		UserPrompt:      m.promptBuilder.BuildMediaUserPrompt(book),
		Schema:          mediaSetSchema(),
		Temperature:     m.params.Temperature,
		MaxOutputTokens: m.params.MaxOutputTokens,
	})
	if err != nil {
		return nil, &BackendError{Err: err}
	}

	var set model.CrossDomainMediaSet
	if err := json.Unmarshal(raw, &set); err != nil {
		return nil, &InvalidSetError{Reason: fmt.Errorf("malformed backend response: %w", err)}
	}

	if err := m.pipeline.Validate(&set); err != nil {
		return nil, &InvalidSetError{Reason: err}
	}

	log.Printf("[MEDIA] Generated media suggestions (movie: %s, game: %s, song: %s)",
		set.Movie.Title, set.Game.Title, set.Song.Title)
	return &set, nil
}

// validateMediaSeed checks the book fields the media prompt depends on
func validateMediaSeed(book *model.BookRecommendation) error {
	fields := []struct {
		name  string
		value string
	}{
		{"title", book.Title},
		{"author", book.Author},
		{"genre", book.Genre},
		{"description", book.Description},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%s is required", f.name)
		}
	}
	return nil
}

// truncateForLog truncates a string to maxLen runes for logging
func truncateForLog(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) > maxLen {
		return string(runes[:maxLen]) + "..."
	}
	return s
}
