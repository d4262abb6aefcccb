// Package key prints the legend of question kinds.
package key

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/meditary/pkg/glyph"
)

type Key struct{}

func (k *Key) Do(ctx context.Context) error {
	k.Key(ctx, glyph.DefaultGlyphs())
	return nil
}

func (k *Key) Key(_ context.Context, glyfs []glyph.Glyph) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(glyph.Bold("Kind"), glyph.Bold("Symbol"), glyph.Bold("Answer"))
	for _, v := range glyfs {
		tbl.AddRow(v.Key, v.Symbol, v.Meaning)
	}

	_, _ = fmt.Fprintln(color.Output, glyph.Bold(glyph.Underline("\nQuestion kinds")))
	_, _ = fmt.Fprintln(color.Output, tbl)
}
