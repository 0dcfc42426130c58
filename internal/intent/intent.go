package intent

import (
	"errors"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/nicholas-gates/book-recommendations/internal/model"
)

// ErrEmptyThought is returned when the input contains no usable text.
var ErrEmptyThought = errors.New("intent: thought must not be empty")

// Normalize packages a free-text reading thought as a RecommendationRequest.
// The text is normalized to Unicode NFC form and trimmed; its content is
// otherwise carried through unchanged, so normalizing twice is a no-op.
func Normalize(text string) (*model.RecommendationRequest, error) {
	thought := strings.TrimSpace(norm.NFC.String(text))
	if thought == "" {
		return nil, ErrEmptyThought
	}
	return &model.RecommendationRequest{Thought: thought}, nil
}
