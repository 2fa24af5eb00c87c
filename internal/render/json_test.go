package render

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metcalfc/mdoutline/internal/outline"
)

func TestJSONFormat(t *testing.T) {
	o := outline.Outline{Headings: []outline.Heading{
		outline.H1("One"),
		outline.H2("<Two> & more"),
	}}

	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, o))

	want := `[
  {
    "kind": "H1",
    "title": "One"
  },
  {
    "kind": "H2",
    "title": "<Two> & more"
  }
]
`
	assert.Equal(t, want, buf.String())
}

func TestJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, outline.Outline{}))
	assert.Equal(t, "[]\n", buf.String())
}

func TestJSONRoundTrip(t *testing.T) {
	o := outline.Outline{Headings: []outline.Heading{
		outline.H1("A"),
		outline.H2("B"),
		outline.H1("A"),
		outline.H2(""),
	}}

	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, o))

	got, err := DecodeJSON(&buf)
	require.NoError(t, err)
	assert.Equal(t, o, got)
}

func TestDecodeJSONInvalid(t *testing.T) {
	_, err := DecodeJSON(strings.NewReader(`[{"kind":"H4","title":"x"}]`))
	assert.Error(t, err)

	_, err = DecodeJSON(strings.NewReader(`not json`))
	assert.Error(t, err)
}

func TestWriteJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "outline.json")
	o := outline.Outline{Headings: []outline.Heading{outline.H1("Saved")}}

	require.NoError(t, WriteJSONFile(path, o))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	got, err := DecodeJSON(f)
	require.NoError(t, err)
	assert.Equal(t, o, got)
}

func TestWriteJSONFileUnwritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "outline.json")

	err := WriteJSONFile(path, outline.Outline{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to write output file '"+path+"'")
}
