package optimizer

import "fmt"

// GenerationFailure indicates that no attempt produced a scoreable document.
// Individual sub-call failures never surface here; they fall back to the
// candidate's original content within the attempt.
type GenerationFailure struct {
	Attempts int
	Cause    error
}

func (e *GenerationFailure) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("CV generation failed after %d attempts: %v", e.Attempts, e.Cause)
	}
	return fmt.Sprintf("CV generation failed after %d attempts", e.Attempts)
}

func (e *GenerationFailure) Unwrap() error {
	return e.Cause
}
