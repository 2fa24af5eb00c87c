// Package state remembers which heading the outline browser was left on, per
// input file.
package state

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/metcalfc/mdoutline/internal/outline"
)

const bookmarksFileName = "bookmarks.json"

// Bookmark identifies a heading by content rather than position, so it
// survives edits that move the heading. Occurrence counts earlier headings
// equal to Heading, starting at 0.
type Bookmark struct {
	Heading    outline.Heading `json:"heading"`
	Occurrence int             `json:"occurrence"`
}

// BookmarkAt returns the bookmark for the heading at cursor in o.
func BookmarkAt(o outline.Outline, cursor int) (Bookmark, bool) {
	if cursor < 0 || cursor >= o.Len() {
		return Bookmark{}, false
	}
	h := o.Headings[cursor]
	b := Bookmark{Heading: h}
	for _, prev := range o.Headings[:cursor] {
		if prev == h {
			b.Occurrence++
		}
	}
	return b, true
}

// Locate returns the index of the bookmarked heading in o.
func (b Bookmark) Locate(o outline.Outline) (int, bool) {
	seen := 0
	for i, h := range o.Headings {
		if h != b.Heading {
			continue
		}
		if seen == b.Occurrence {
			return i, true
		}
		seen++
	}
	return 0, false
}

// BookmarkStore persists one bookmark per input file as a JSON object keyed
// by absolute path.
type BookmarkStore struct {
	path  string
	marks map[string]Bookmark
}

// NewBookmarkStore loads the store from XDG_STATE_HOME/mdoutline, creating
// the directory when needed.
func NewBookmarkStore() (*BookmarkStore, error) {
	dir := stateDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrap(err, "create state dir")
	}
	return LoadBookmarkStore(filepath.Join(dir, bookmarksFileName))
}

// LoadBookmarkStore reads the store kept at path. A missing file is an empty
// store; an unreadable or corrupt one is an error.
func LoadBookmarkStore(path string) (*BookmarkStore, error) {
	s := &BookmarkStore{path: path, marks: make(map[string]Bookmark)}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read bookmarks")
	}
	if err := json.Unmarshal(data, &s.marks); err != nil {
		return nil, errors.Wrapf(err, "parse bookmarks %s", path)
	}
	return s, nil
}

func stateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "mdoutline")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "mdoutline")
}

func key(filename string) string {
	if abs, err := filepath.Abs(filename); err == nil {
		return abs
	}
	return filepath.Clean(filename)
}

// Get returns the bookmark saved for filename.
func (s *BookmarkStore) Get(filename string) (Bookmark, bool) {
	b, ok := s.marks[key(filename)]
	return b, ok
}

// Put saves b for filename.
func (s *BookmarkStore) Put(filename string, b Bookmark) error {
	s.marks[key(filename)] = b
	return s.save()
}

// Delete forgets the bookmark for filename. Deleting a missing bookmark does
// not touch the file.
func (s *BookmarkStore) Delete(filename string) error {
	k := key(filename)
	if _, ok := s.marks[k]; !ok {
		return nil
	}
	delete(s.marks, k)
	return s.save()
}

// save writes the store to a temp file and renames it over path.
func (s *BookmarkStore) save() error {
	data, err := json.MarshalIndent(s.marks, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode bookmarks")
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".bookmarks-*.json")
	if err != nil {
		return errors.Wrap(err, "save bookmarks")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(err, "save bookmarks")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "save bookmarks")
	}
	return errors.Wrap(os.Rename(tmp.Name(), s.path), "save bookmarks")
}
