package outline

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrSourceUnavailable marks an input that could not be opened. It is
	// recoverable: the outline is empty and the caller decides what to do.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrInvalidUTF8 is the cause of a LineDecodeError for a line that is
	// not valid UTF-8 text.
	ErrInvalidUTF8 = errors.New("invalid UTF-8")
)

// LineDecodeError reports a line that could not be read as text. It aborts
// the whole parse.
type LineDecodeError struct {
	Path string
	Line int
	Err  error
}

func (e *LineDecodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
}

func (e *LineDecodeError) Unwrap() error { return e.Err }
