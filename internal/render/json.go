package render

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/metcalfc/mdoutline/internal/outline"
)

// JSON writes o to w as a pretty-printed array of {"kind", "title"} records.
func JSON(w io.Writer, o outline.Outline) error {
	headings := o.Headings
	if headings == nil {
		headings = []outline.Heading{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(headings)
}

// WriteJSONFile writes the JSON form of o to filename, replacing any existing
// file.
func WriteJSONFile(filename string, o outline.Outline) error {
	var buf bytes.Buffer
	if err := JSON(&buf, o); err != nil {
		return errors.Wrap(err, "encode outline")
	}
	if err := os.WriteFile(filename, buf.Bytes(), 0644); err != nil {
		return errors.Wrapf(err, "unable to write output file '%s'", filename)
	}
	return nil
}

// DecodeJSON reads an outline previously written by JSON.
func DecodeJSON(r io.Reader) (outline.Outline, error) {
	var headings []outline.Heading
	if err := json.NewDecoder(r).Decode(&headings); err != nil {
		return outline.Outline{}, errors.Wrap(err, "decode outline")
	}
	return outline.Outline{Headings: headings}, nil
}
