package validation

import (
	"fmt"

	"github.com/nicholas-gates/book-recommendations/internal/model"
)

// CardinalityValidator enforces the 3-5 bound on a book recommendation set
type CardinalityValidator struct{}

// NewCardinalityValidator creates a new CardinalityValidator
func NewCardinalityValidator() *CardinalityValidator {
	return &CardinalityValidator{}
}

// Name returns the validator name
func (v *CardinalityValidator) Name() string {
	return "CardinalityValidator"
}

// Validate checks that the set holds between 3 and 5 recommendations
func (v *CardinalityValidator) Validate(set *model.BookRecommendationSet) Result {
	n := len(set.Recommendations)
	if n < model.MinBookRecommendations || n > model.MaxBookRecommendations {
		return Fail(fmt.Sprintf("got %d recommendations, want between %d and %d",
			n, model.MinBookRecommendations, model.MaxBookRecommendations))
	}
	return OK()
}

// RequiredFieldsValidator enforces that every book record is complete
type RequiredFieldsValidator struct{}

// NewRequiredFieldsValidator creates a new RequiredFieldsValidator
func NewRequiredFieldsValidator() *RequiredFieldsValidator {
	return &RequiredFieldsValidator{}
}

// Name returns the validator name
func (v *RequiredFieldsValidator) Name() string {
	return "RequiredFieldsValidator"
}

// Validate checks every record for missing fields
func (v *RequiredFieldsValidator) Validate(set *model.BookRecommendationSet) Result {
	for i := range set.Recommendations {
		if err := set.Recommendations[i].Validate(); err != nil {
			return Fail(fmt.Sprintf("recommendation %d: %v", i+1, err))
		}
	}
	return OK()
}
