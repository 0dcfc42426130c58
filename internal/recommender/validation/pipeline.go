package validation

import (
	"errors"
	"log"
)

// Pipeline runs multiple validators in sequence, stopping at the first
// failure. A failing set is rejected whole; there is no correction step.
type Pipeline[T any] struct {
	validators []Validator[T]
}

// NewPipeline creates a new validation pipeline
func NewPipeline[T any](validators ...Validator[T]) *Pipeline[T] {
	return &Pipeline[T]{validators: validators}
}

// Validate runs all validators and returns the first failure as an error
func (p *Pipeline[T]) Validate(set T) error {
	for _, v := range p.validators {
		result := v.Validate(set)

		if result.IsValid {
			log.Printf("[Pipeline] %s: PASS", v.Name())
			continue
		}

		log.Printf("[Pipeline] %s: FAIL - %s", v.Name(), truncateForLog(result.Reason, 120))
		return errors.New(result.Reason)
	}

	return nil
}
