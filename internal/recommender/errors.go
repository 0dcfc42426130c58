package recommender

import "errors"

var (
	// ErrEmptyRequest is returned when a recommendation is requested without a thought.
	ErrEmptyRequest = errors.New("recommender: request thought must not be empty")
	// ErrNoBookSelected is returned when media suggestions are requested without a book.
	ErrNoBookSelected = errors.New("recommender: no book selected")
)

// BackendError reports that the generation backend could not be reached or
// refused the call. The wrapped error keeps transport detail (gRPC status,
// timeout) available to callers.
type BackendError struct {
	Err error
}

func (e *BackendError) Error() string {
	return "recommender: backend request failed: " + e.Err.Error()
}

func (e *BackendError) Unwrap() error { return e.Err }

// InvalidSetError reports that the backend was reachable but returned a set
// that fails shape validation. The set is rejected whole, never repaired.
type InvalidSetError struct {
	Reason error
}

func (e *InvalidSetError) Error() string {
	return "recommender: invalid set: " + e.Reason.Error()
}

func (e *InvalidSetError) Unwrap() error { return e.Reason }
