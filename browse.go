package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/metcalfc/mdoutline/internal/outline"
	"github.com/metcalfc/mdoutline/internal/state"
)

var (
	h1RowStyle = lipgloss.NewStyle().
			Bold(true)

	h2RowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFAA00"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Padding(0, 1)

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			Italic(true)
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Top, k.Bottom, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Top: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("g", "first"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("G", "last"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "Q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// browser is the bubbletea model of the interactive outline view.
type browser struct {
	outline  outline.Outline
	info     string
	cursor   int
	keys     keyMap
	help     help.Model
	quitting bool
	width    int
	height   int
}

func newBrowser(o outline.Outline, info string, cursor int) browser {
	if cursor < 0 || cursor >= o.Len() {
		cursor = 0
	}
	return browser{
		outline: o,
		info:    info,
		cursor:  cursor,
		keys:    keys,
		help:    help.New(),
		width:   80,
		height:  24,
	}
}

func (m browser) Init() tea.Cmd {
	return nil
}

func (m browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < m.outline.Len()-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.Top):
			m.cursor = 0

		case key.Matches(msg, m.keys.Bottom):
			if m.outline.Len() > 0 {
				m.cursor = m.outline.Len() - 1
			}
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

func (m browser) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder

	if m.outline.Empty() {
		sb.WriteString(statusStyle.Render(m.info))
		sb.WriteString("\n\n")
		sb.WriteString(emptyStyle.Render("  No headings found."))
		sb.WriteString("\n\n")
		sb.WriteString(m.help.View(m.keys))
		return sb.String()
	}

	status := statusStyle.Render(
		fmt.Sprintf("%s | Heading %d/%d", m.info, m.cursor+1, m.outline.Len()),
	)
	sb.WriteString(status)
	sb.WriteString("\n")

	start, end := m.visibleRange()
	for i := start; i < end; i++ {
		sb.WriteString(m.row(i))
		sb.WriteString("\n")
	}

	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// visibleRange returns the slice of headings that fits between the status
// line and the help line, keeping the cursor roughly centered.
func (m browser) visibleRange() (start, end int) {
	// Reserve 2 lines: 1 for status at top, 1 for help at bottom
	avail := m.height - 2
	if avail < 1 {
		avail = 1
	}
	total := m.outline.Len()
	if total <= avail {
		return 0, total
	}

	start = m.cursor - avail/2
	if start < 0 {
		start = 0
	}
	if start > total-avail {
		start = total - avail
	}
	return start, start + avail
}

func (m browser) row(i int) string {
	h := m.outline.Headings[i]

	var text string
	style := h1RowStyle
	switch h.Kind {
	case outline.KindH1:
		text = "⇒ " + h.Title
	case outline.KindH2:
		text = "  ↳ " + h.Title
		style = h2RowStyle
	}

	if i == m.cursor {
		return selectedStyle.Render("> " + text)
	}
	return "  " + style.Render(text)
}

// describeInput returns the base name of filename with its size, or just the
// name when it cannot be stat'ed.
func describeInput(filename string) string {
	name := filepath.Base(filename)
	info, err := os.Stat(filename)
	if err != nil {
		return name
	}
	return fmt.Sprintf("%s (%s)", name, humanize.Bytes(uint64(info.Size())))
}

// restoreCursor returns the index of the heading bookmarked for filename, or
// 0. A bookmark whose heading is gone is deleted.
func restoreCursor(store *state.BookmarkStore, filename string, o outline.Outline) (int, error) {
	b, ok := store.Get(filename)
	if !ok {
		return 0, nil
	}
	if i, ok := b.Locate(o); ok {
		return i, nil
	}
	return 0, store.Delete(filename)
}

// saveCursor bookmarks the heading at cursor for filename.
func saveCursor(store *state.BookmarkStore, filename string, o outline.Outline, cursor int) error {
	b, ok := state.BookmarkAt(o, cursor)
	if !ok {
		return store.Delete(filename)
	}
	return store.Put(filename, b)
}

// browse runs the interactive outline view, starting on the heading that was
// selected when the same file was last browsed. Bookmark problems are reported
// as warnings on stderr and never stop the view.
func browse(filename string, o outline.Outline, stderr io.Writer) error {
	store, err := state.NewBookmarkStore()
	if err != nil {
		fmt.Fprintf(stderr, "Warning: bookmarks disabled: %v\n", err)
	}

	start := 0
	if store != nil {
		if start, err = restoreCursor(store, filename, o); err != nil {
			fmt.Fprintf(stderr, "Warning: %v\n", err)
		}
	}

	m := newBrowser(o, describeInput(filename), start)
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	if b, ok := final.(browser); ok && store != nil {
		if err := saveCursor(store, filename, o, b.cursor); err != nil {
			fmt.Fprintf(stderr, "Warning: %v\n", err)
		}
	}
	return nil
}
