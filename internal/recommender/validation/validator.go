package validation

// Result is the outcome of one validation rule
type Result struct {
	IsValid bool
	Reason  string
}

// OK returns a successful validation result
func OK() Result {
	return Result{IsValid: true}
}

// Fail returns a failed validation result
func Fail(reason string) Result {
	return Result{IsValid: false, Reason: reason}
}

// Validator is the interface for structural rules on a decoded set
type Validator[T any] interface {
	// Name returns the validator's name for logging
	Name() string
	// Validate checks the set and returns a validation result
	Validate(set T) Result
}

// truncateForLog truncates a string for logging purposes
func truncateForLog(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) > maxLen {
		return string(runes[:maxLen]) + "..."
	}
	return s
}
