package outline

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Classify reports whether line is a level-1 or level-2 heading. A heading
// starts with one or two '#' followed by a whitespace character; the title
// is the rest of the line after that character, normalized. Lines starting
// with three or more '#' are never headings.
func Classify(line string) (Heading, bool) {
	n := 0
	for n < len(line) && line[n] == '#' {
		n++
	}
	if n == 0 || n > 2 {
		return Heading{}, false
	}

	sep, size := utf8.DecodeRuneInString(line[n:])
	if size == 0 || !unicode.IsSpace(sep) {
		return Heading{}, false
	}

	title := NormalizeTitle(line[n+size:])
	if n == 1 {
		return H1(title), true
	}
	return H2(title), true
}

var (
	lineBreakTag  = regexp.MustCompile(`<br/>`)
	htmlTag       = regexp.MustCompile(`</*[a-z0-9\-]+>`)
	styleAttr     = regexp.MustCompile(`\{\.[a-z]{2,3}\}`)
	quoteReplacer = strings.NewReplacer("`", "", "*", "")
)

// NormalizeTitle strips markup noise from a raw heading title: <br/> becomes
// a space, other inline tags are removed, backticks and asterisks are
// deleted, and {.xx} style annotations are dropped. The passes repeat until
// the title stops changing, so the result is a fixed point.
func NormalizeTitle(raw string) string {
	title := raw
	for {
		next := normalizeOnce(title)
		if next == title {
			return next
		}
		title = next
	}
}

func normalizeOnce(s string) string {
	s = lineBreakTag.ReplaceAllLiteralString(s, " ")
	s = htmlTag.ReplaceAllLiteralString(s, "")
	s = quoteReplacer.Replace(s)
	return styleAttr.ReplaceAllLiteralString(s, "")
}
