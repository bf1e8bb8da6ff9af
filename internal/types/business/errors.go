package business

import (
	"errors"
	"fmt"
)

var (
	// ErrRepeatedLabel is returned by a tagger that cannot assign one
	// contiguous span per label.
	ErrRepeatedLabel = errors.New("repeated label")
	// ErrInvalidInput marks empty or whitespace-only input. Its text is the
	// issue reported for such input.
	ErrInvalidInput = errors.New("Invalid input: empty or non-string address")
)

// RepeatedLabelError describes an ambiguous labeling of an address string.
type RepeatedLabelError struct {
	Label string
	Input string
}

func (e *RepeatedLabelError) Error() string {
	return fmt.Sprintf("label %s appears more than once in %q", e.Label, e.Input)
}

// Unwrap makes errors.Is(err, ErrRepeatedLabel) hold.
func (e *RepeatedLabelError) Unwrap() error {
	return ErrRepeatedLabel
}
