package scene

import (
	"errors"
	"fmt"
)

// ErrEmptyScene is returned before any network call when the submitted scene
// text is empty or blank.
var ErrEmptyScene = errors.New("scene text must not be empty")

// ParseError reports a model reply that could not be interpreted as a valid
// analysis. Raw preserves the reply unaltered so the UI can show it to the
// user for inspection.
type ParseError struct {
	Reason string
	Raw    string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse analysis: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("parse analysis: %s", e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Err }
