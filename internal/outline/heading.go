// Package outline extracts the level-1 and level-2 heading structure of a
// markdown document.
package outline

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind is the rank of a heading.
type Kind int

const (
	// KindH1 is a level-1 heading ("# ").
	KindH1 Kind = iota + 1
	// KindH2 is a level-2 heading ("## ").
	KindH2
)

func (k Kind) String() string {
	switch k {
	case KindH1:
		return "H1"
	case KindH2:
		return "H2"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MarshalText encodes k as "H1" or "H2".
func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case KindH1, KindH2:
		return []byte(k.String()), nil
	}
	return nil, errors.Errorf("outline: invalid heading kind %d", int(k))
}

// UnmarshalText decodes "H1" or "H2".
func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "H1":
		*k = KindH1
	case "H2":
		*k = KindH2
	default:
		return errors.Errorf("outline: unknown heading kind %q", text)
	}
	return nil
}

// Heading is a classified title. Two headings are equal when both kind and
// title match.
type Heading struct {
	Kind  Kind   `json:"kind"`
	Title string `json:"title"`
}

// H1 returns a level-1 heading.
func H1(title string) Heading { return Heading{Kind: KindH1, Title: title} }

// H2 returns a level-2 heading.
func H2(title string) Heading { return Heading{Kind: KindH2, Title: title} }

func (h Heading) String() string {
	return fmt.Sprintf("%s(%q)", h.Kind, h.Title)
}

// Outline is the ordered heading sequence of one document. Once built it has
// no two equal adjacent headings and is not modified.
type Outline struct {
	Headings []Heading
}

// Len returns the number of headings.
func (o Outline) Len() int { return len(o.Headings) }

// Empty reports whether o has no headings.
func (o Outline) Empty() bool { return len(o.Headings) == 0 }
