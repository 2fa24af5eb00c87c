package source

import (
	"bufio"
	"bytes"
	"io"
	"iter"
	"os"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/pkg/errors"
)

// MarkdownFormat implements Format for Markdown files.
type MarkdownFormat struct{}

func init() {
	Register(&MarkdownFormat{})
}

func (f *MarkdownFormat) Name() string         { return "Markdown" }
func (f *MarkdownFormat) Extensions() []string { return []string{".md", ".markdown"} }

// Open opens filename for buffered sequential line reading.
func (f *MarkdownFormat) Open(filename string, opts Options) (Source, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	return &markdownSource{file: file, skipFrontMatter: opts.SkipFrontMatter}, nil
}

type markdownSource struct {
	file            *os.File
	skipFrontMatter bool
}

// Lines yields lines of any length. With front matter skipping enabled, the
// front matter block is yielded as blank lines so line numbers still count
// from the top of the file.
func (s *markdownSource) Lines() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		var r io.Reader = s.file
		if s.skipFrontMatter {
			body, skipped, err := StripFrontMatter(s.file)
			if err != nil {
				yield("", err)
				return
			}
			for i := 0; i < skipped; i++ {
				if !yield("", nil) {
					return
				}
			}
			r = bytes.NewReader(body)
		}

		br := bufio.NewReader(r)
		for {
			line, err := br.ReadString('\n')
			if err != nil && err != io.EOF {
				yield("", err)
				return
			}
			if line == "" && err == io.EOF {
				return
			}
			if !yield(trimLineEnding(line), nil) || err == io.EOF {
				return
			}
		}
	}
}

// trimLineEnding strips a trailing "\n" or "\r\n".
func trimLineEnding(line string) string {
	if !strings.HasSuffix(line, "\n") {
		return line
	}
	return strings.TrimSuffix(line[:len(line)-1], "\r")
}

func (s *markdownSource) Close() error {
	return s.file.Close()
}

// StripFrontMatter returns the document body that follows a leading front
// matter block and the number of lines the block occupied. Input without
// front matter is returned unchanged with zero skipped lines.
//
// A document whose first line is a "---" thematic break is read as YAML
// front matter up to the next "---" line.
func StripFrontMatter(r io.Reader) ([]byte, int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, 0, err
	}

	var meta map[string]interface{}
	body, err := frontmatter.Parse(bytes.NewReader(data), &meta)
	if err != nil {
		return nil, 0, errors.Wrap(err, "parse front matter")
	}
	if !bytes.HasSuffix(data, body) {
		return body, 0, nil
	}
	return body, bytes.Count(data[:len(data)-len(body)], []byte("\n")), nil
}
