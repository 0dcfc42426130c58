package handler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"google.golang.org/genai"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/nicholas-gates/book-recommendations/internal/config"
	"github.com/nicholas-gates/book-recommendations/internal/intent"
	"github.com/nicholas-gates/book-recommendations/internal/model"
	"github.com/nicholas-gates/book-recommendations/internal/recommender"
)

const (
	// GenerationTimeout is the maximum time allowed for one generation call
	GenerationTimeout = 60 * time.Second
	// MaxThoughtLength is the maximum allowed intent length
	MaxThoughtLength = 500
)

// BookRecommender generates validated book recommendation sets
type BookRecommender interface {
	Recommend(ctx context.Context, req *model.RecommendationRequest) (*model.BookRecommendationSet, error)
}

// MediaSuggester generates validated cross-domain media sets
type MediaSuggester interface {
	Suggest(ctx context.Context, book *model.BookRecommendation) (*model.CrossDomainMediaSet, error)
}

type RecommendRequest struct {
	Thought string `json:"thought" binding:"required,max=500"`
}

type MediaRequest struct {
	Title       string `json:"title" binding:"required"`
	Author      string `json:"author" binding:"required"`
	Genre       string `json:"genre" binding:"required"`
	Description string `json:"description" binding:"required"`
}

var (
	bookRecommender  BookRecommender
	mediaRecommender MediaSuggester
	recommenderMu    sync.RWMutex
)

// InitRecommenders wires the Gemini-backed recommenders
func InitRecommenders(ctx context.Context, cfg *config.Config) error {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return fmt.Errorf("failed to create genai client: %w", err)
	}

	llm := recommender.NewGeminiClient(client, cfg.Model)
	params := cfg.Params()

	recommenderMu.Lock()
	defer recommenderMu.Unlock()
	bookRecommender = recommender.NewBookRecommender(llm, params)
	mediaRecommender = recommender.NewMediaRecommender(llm, params)

	log.Printf("[INIT] Recommenders initialized (model: %s)", cfg.Model)
	return nil
}

// HandleRecommend generates a book recommendation set for a reading thought
func HandleRecommend(c *gin.Context) {
	start := time.Now()

	var req RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if strings.Contains(err.Error(), "max") {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("Thought is too long (max %d characters)", MaxThoughtLength),
				"code":  "THOUGHT_TOO_LONG",
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request: thought is required",
			"code":  "INVALID_REQUEST",
		})
		return
	}

	normalized, err := intent.Normalize(req.Thought)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request: thought is empty",
			"code":  "INVALID_REQUEST",
		})
		return
	}

	recommenderMu.RLock()
	current := bookRecommender
	recommenderMu.RUnlock()

	if current == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Recommendation service is not available",
			"code":  "SERVICE_UNAVAILABLE",
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), GenerationTimeout)
	defer cancel()

	set, err := current.Recommend(ctx, normalized)
	if err != nil {
		respondGenerationError(c, err)
		return
	}

	log.Printf("[PERF] Recommendation completed in %v", time.Since(start))
	c.JSON(http.StatusOK, set)
}

// HandleMedia generates the movie/game/song triple for a chosen book
func HandleMedia(c *gin.Context) {
	start := time.Now()

	var req MediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request: title, author, genre and description are required",
			"code":  "INVALID_BOOK",
		})
		return
	}

	recommenderMu.RLock()
	current := mediaRecommender
	recommenderMu.RUnlock()

	if current == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Recommendation service is not available",
			"code":  "SERVICE_UNAVAILABLE",
		})
		return
	}

	book := &model.BookRecommendation{
		Title:       req.Title,
		Author:      req.Author,
		Genre:       req.Genre,
		Description: req.Description,
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), GenerationTimeout)
	defer cancel()

	set, err := current.Suggest(ctx, book)
	if err != nil {
		respondGenerationError(c, err)
		return
	}

	log.Printf("[PERF] Media suggestion completed in %v", time.Since(start))
	c.JSON(http.StatusOK, set)
}

// respondGenerationError maps the recommender error taxonomy onto HTTP
// responses. Validation failures are kept distinct from backend failures:
// the backend was reachable but its output was unusable.
func respondGenerationError(c *gin.Context, err error) {
	log.Printf("[ERROR] Generation failed: %v", err)

	if errors.Is(err, context.DeadlineExceeded) {
		c.JSON(http.StatusGatewayTimeout, gin.H{
			"error": "Request timed out. Please try again.",
			"code":  "TIMEOUT",
		})
		return
	}

	if errors.Is(err, recommender.ErrEmptyRequest) || errors.Is(err, recommender.ErrNoBookSelected) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
			"code":  "INVALID_REQUEST",
		})
		return
	}

	var invalid *recommender.InvalidSetError
	if errors.As(err, &invalid) {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "The backend returned an unusable recommendation set. Please try again.",
			"code":  "INVALID_RESPONSE",
		})
		return
	}

	// Check for Gemini API rate limit (ResourceExhausted)
	if isRateLimitError(err) {
		log.Printf("[QUOTA] Gemini API rate limit exceeded")
		c.Header("Retry-After", "60")
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error":      "The recommendation backend is over quota. Please come back in a bit.",
			"code":       "GEMINI_RATE_LIMITED",
			"retryAfter": 60,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Failed to generate recommendations. Please try again.",
		"code":  "INTERNAL_ERROR",
	})
}

// isRateLimitError checks if the error is a Gemini API rate limit error
func isRateLimitError(err error) bool {
	// Check for gRPC ResourceExhausted status
	if s, ok := status.FromError(err); ok {
		return s.Code() == codes.ResourceExhausted
	}
	// Also check for wrapped errors and string matching as fallback
	errStr := err.Error()
	return strings.Contains(errStr, "ResourceExhausted") ||
		strings.Contains(errStr, "429") ||
		strings.Contains(errStr, "rate limit") ||
		strings.Contains(errStr, "quota")
}
