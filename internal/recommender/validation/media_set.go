package validation

import (
	"github.com/nicholas-gates/book-recommendations/internal/model"
)

// CompletenessValidator enforces that all three media slots are present and
// filled. A missing slot is a validation failure, not a partial success.
type CompletenessValidator struct{}

// NewCompletenessValidator creates a new CompletenessValidator
func NewCompletenessValidator() *CompletenessValidator {
	return &CompletenessValidator{}
}

// Name returns the validator name
func (v *CompletenessValidator) Name() string {
	return "CompletenessValidator"
}

// Validate checks the movie/game/song triple for missing slots or fields
func (v *CompletenessValidator) Validate(set *model.CrossDomainMediaSet) Result {
	if err := set.Validate(); err != nil {
		return Fail(err.Error())
	}
	return OK()
}
