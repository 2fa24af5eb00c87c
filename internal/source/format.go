// Package source turns input files into sequences of markdown-shaped lines.
package source

import (
	"iter"
	"path/filepath"
	"strings"
)

// Source is an opened input whose lines can be iterated once.
type Source interface {
	// Lines yields each line without its terminator. A non-nil error ends
	// the sequence.
	Lines() iter.Seq2[string, error]
	Close() error
}

// Options tune how a format opens its input.
type Options struct {
	// SkipFrontMatter drops a leading YAML/TOML/JSON front matter block.
	SkipFrontMatter bool
}

// Format defines a file format that can produce heading lines.
type Format interface {
	Name() string
	Extensions() []string
	Open(filename string, opts Options) (Source, error)
}

var registry []Format

// Register adds a format to the registry.
func Register(f Format) {
	registry = append(registry, f)
}

// Lookup returns the registered format for filename, falling back to Markdown.
func Lookup(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, f := range registry {
		for _, e := range f.Extensions() {
			if ext == e {
				return f
			}
		}
	}
	return &MarkdownFormat{}
}

// Open opens filename with the format registered for its extension.
func Open(filename string, opts Options) (Source, error) {
	return Lookup(filename).Open(filename, opts)
}

// SupportedFormats returns registered format names with their extensions.
func SupportedFormats() []string {
	var out []string
	for _, f := range registry {
		out = append(out, f.Name()+" ("+strings.Join(f.Extensions(), ", ")+")")
	}
	return out
}
