package glyph

import (
	"fmt"
	"math"
	"strings"

	"tableflip.dev/meditary/pkg/entry"
	"tableflip.dev/meditary/pkg/question"
)

type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
}

const (
	escape        = "\x1b"
	resetCode     = 0
	boldCode      = 1
	underlineCode = 4
)

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underlineCode, in, escape, resetCode)
}

const (
	filled   = "●"
	empty    = "○"
	yes      = "✔"
	no       = "✘"
	textMark = "⁃"
	unknown  = "?"
)

// DefaultGlyphs is the legend of question kinds.
func DefaultGlyphs() []Glyph {
	return []Glyph{
		{Key: string(question.KindRating), Symbol: filled + empty, Meaning: fmt.Sprintf("rating from %d to %d", question.MinRating, question.MaxRating)},
		{Key: string(question.KindBinary), Symbol: yes + " " + no, Meaning: "yes or no"},
		{Key: string(question.KindFreeText), Symbol: textMark, Meaning: "free text"},
	}
}

// ForKind returns the legend glyph for k.
func ForKind(k question.Kind) Glyph {
	for _, g := range DefaultGlyphs() {
		if g.Key == string(k) {
			return g
		}
	}
	return Glyph{Key: string(k), Symbol: unknown, Meaning: "unknown"}
}

// Rating draws n as filled dots out of MaxRating. Fractions round to nearest.
func Rating(n float64) string {
	full := int(math.Round(n))
	if full < 0 {
		full = 0
	}
	if full > question.MaxRating {
		full = question.MaxRating
	}
	return strings.Repeat(filled, full) + strings.Repeat(empty, question.MaxRating-full)
}

// Answer renders v the way kind expects it. Values that do not fit the kind
// are shown raw.
func Answer(kind question.Kind, v entry.Value) string {
	switch kind {
	case question.KindRating:
		if n, ok := v.Number(); ok {
			return Rating(n)
		}
	case question.KindBinary:
		if s, ok := v.Text(); ok {
			switch s {
			case question.Yes:
				return yes
			case question.No:
				return no
			}
		}
	}
	return v.String()
}
