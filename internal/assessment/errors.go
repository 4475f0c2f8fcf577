package assessment

import "fmt"

// ValidationError reports missing or empty required input. Surfaced to the
// caller, never retried.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError reports an unknown testId or sessionId. The message tells
// the user to generate a new test/session.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// ExtractionError wraps a failure of the skill-extraction collaborator that
// its own fallback could not absorb.
type ExtractionError struct {
	Message string
	Err     error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}
