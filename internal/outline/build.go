package outline

import (
	"iter"
	"slices"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/metcalfc/mdoutline/internal/source"
)

// Build classifies lines in order and returns the deduplicated outline.
// Iteration stops at the first read error or invalid UTF-8 line, which is
// returned as a *LineDecodeError together with an empty outline.
func Build(lines iter.Seq2[string, error]) (Outline, error) {
	var headings []Heading
	n := 0
	for line, err := range lines {
		n++
		if err != nil {
			return Outline{}, &LineDecodeError{Line: n, Err: err}
		}
		if !utf8.ValidString(line) {
			return Outline{}, &LineDecodeError{Line: n, Err: ErrInvalidUTF8}
		}
		if h, ok := Classify(line); ok {
			headings = append(headings, h)
		}
	}
	return Outline{Headings: Dedup(headings)}, nil
}

// Dedup collapses runs of equal adjacent headings into one, in place.
// Equal headings separated by a different one are all kept.
func Dedup(headings []Heading) []Heading {
	return slices.Compact(headings)
}

// Parse opens filename through the source registry and builds its outline.
// An input that cannot be opened yields an empty outline and an error
// matching ErrSourceUnavailable.
func Parse(filename string, opts source.Options) (Outline, error) {
	src, err := source.Open(filename, opts)
	if err != nil {
		return Outline{}, errors.Wrapf(&unavailableError{cause: err}, "failed to open file '%s'", filename)
	}
	defer src.Close()

	return FromSource(filename, src)
}

// FromSource builds the outline of an already opened source. filename is
// only used to annotate errors.
func FromSource(filename string, src source.Source) (Outline, error) {
	o, err := Build(src.Lines())
	if err != nil {
		var decodeErr *LineDecodeError
		if errors.As(err, &decodeErr) {
			decodeErr.Path = filename
		}
		return Outline{}, err
	}
	return o, nil
}

type unavailableError struct {
	cause error
}

func (e *unavailableError) Error() string        { return e.cause.Error() }
func (e *unavailableError) Unwrap() error        { return e.cause }
func (e *unavailableError) Is(target error) bool { return target == ErrSourceUnavailable }
