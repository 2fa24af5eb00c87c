// Package render writes outlines as indented console text or as JSON.
package render

import (
	"bufio"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/metcalfc/mdoutline/internal/outline"
)

const (
	h1Marker = "\u21d2" // ⇒
	h2Marker = "\u21b3" // ↳
)

// TextRenderer prints an outline as an indented list:
//
//	⇒ Heading 1
//	  ↳ Heading 2
//
// Every H1 after the first is preceded by a blank line.
type TextRenderer struct {
	h1Style lipgloss.Style
	h2Style lipgloss.Style
}

// NewTextRenderer returns a TextRenderer whose styles are bound to r, so the
// color profile of r's output decides whether H1 titles are emitted bold.
func NewTextRenderer(r *lipgloss.Renderer) *TextRenderer {
	return &TextRenderer{
		h1Style: r.NewStyle().Bold(true).TabWidth(lipgloss.NoTabConversion),
		h2Style: r.NewStyle().TabWidth(lipgloss.NoTabConversion),
	}
}

// Text renders o to w using a renderer detected from w.
func Text(w io.Writer, o outline.Outline) error {
	return NewTextRenderer(lipgloss.NewRenderer(w)).Render(w, o)
}

// Render writes o to w.
func (t *TextRenderer) Render(w io.Writer, o outline.Outline) error {
	bw := bufio.NewWriter(w)
	firstH1 := true
	for _, h := range o.Headings {
		switch h.Kind {
		case outline.KindH1:
			if !firstH1 {
				bw.WriteString("\n")
			}
			firstH1 = false
			bw.WriteString(h1Marker + " " + t.h1Style.Render(h.Title) + "\n")
		case outline.KindH2:
			bw.WriteString("  " + h2Marker + " " + t.h2Style.Render(h.Title) + "\n")
		}
	}
	return bw.Flush()
}
