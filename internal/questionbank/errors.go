package questionbank

import "fmt"

// ErrInvalidBank indicates a question bank or answer sheet that failed
// schema or structural validation.
type ErrInvalidBank struct {
	Source string
	Err    error
}

func (e *ErrInvalidBank) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("invalid %s: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("invalid question bank: %v", e.Err)
}

func (e *ErrInvalidBank) Unwrap() error { return e.Err }
