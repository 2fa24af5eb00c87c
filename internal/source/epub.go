package source

import (
	"io"
	"iter"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"
	"github.com/taylorskalyo/goreader/epub"
	"golang.org/x/net/html"
)

// EPUBFormat implements Format for EPUB files. Each h1 and h2 element of the
// spine documents becomes a "# " or "## " line, in reading order.
type EPUBFormat struct{}

func init() {
	Register(&EPUBFormat{})
}

func (f *EPUBFormat) Name() string         { return "EPUB" }
func (f *EPUBFormat) Extensions() []string { return []string{".epub"} }

func (f *EPUBFormat) Open(filename string, _ Options) (Source, error) {
	rc, err := epub.OpenReader(filename)
	if err != nil {
		return nil, errors.Wrap(err, "open epub")
	}
	if len(rc.Rootfiles) == 0 {
		rc.Close()
		return nil, errors.New("no rootfiles found in epub")
	}
	return &epubSource{rc: rc, book: rc.Rootfiles[0]}, nil
}

type epubSource struct {
	rc   *epub.ReadCloser
	book *epub.Rootfile
}

func (s *epubSource) Lines() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for _, ref := range s.book.Spine.Itemrefs {
			if ref.Item == nil {
				continue
			}
			lines, err := readHeadingLines(ref.Item)
			if err != nil {
				yield("", errors.Wrapf(err, "read %s", ref.Item.HREF))
				return
			}
			for _, line := range lines {
				if !yield(line, nil) {
					return
				}
			}
		}
	}
}

func (s *epubSource) Close() error {
	s.rc.Close()
	return nil
}

func readHeadingLines(item *epub.Item) ([]string, error) {
	r, err := item.Open()
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return headingLines(r)
}

// headingLines parses an XHTML document and renders its h1/h2 elements as
// markdown heading lines.
func headingLines(r io.Reader) ([]string, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var lines []string
	goquery.NewDocumentFromNode(root).Find("h1, h2").Each(func(_ int, sel *goquery.Selection) {
		marker := "#"
		if goquery.NodeName(sel) == "h2" {
			marker = "##"
		}
		text := strings.Join(strings.Fields(sel.Text()), " ")
		lines = append(lines, marker+" "+text)
	})
	return lines, nil
}
