package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/meditary/pkg/entry"
	"tableflip.dev/meditary/pkg/glyph"
	"tableflip.dev/meditary/pkg/question"
	"tableflip.dev/meditary/pkg/session"
	"tableflip.dev/meditary/pkg/timeutil"
)

type PrettyPrint struct {
	ShowID   bool
	Language string
	// Out defaults to color.Output.
	Out io.Writer
}

var (
	spacing = strings.Repeat(" ", len("00000000-0000-0000-0000-000000000000  "))
)

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out != nil {
		return pp.Out
	}
	return color.Output
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int, one, many string) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " "+one)
	default:
		_, _ = c.Fprintln(pp.out(), " "+many)
	}
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	if pp.ShowID {
		_, _ = f.Fprint(pp.out(), spacing)
	}
	_, _ = f.Fprint(pp.out(), " none\n\n")
}

func (pp *PrettyPrint) id(id string) {
	if !pp.ShowID {
		return
	}
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	_, _ = y.Fprint(pp.out(), id)
	if pad := len(spacing) - len(id); pad > 0 {
		_, _ = y.Fprint(pp.out(), strings.Repeat(" ", pad))
	} else {
		_, _ = y.Fprint(pp.out(), " ")
	}
}

// Entries prints one line per entry: date, minutes, concentration and the
// start of the notes.
func (pp *PrettyPrint) Entries(entries ...entry.Entry) {
	if len(entries) == 0 {
		pp.none()
		return
	}

	t := color.New()
	f := color.New(color.Faint)
	for _, e := range entries {
		pp.id(e.ID)
		_, _ = t.Fprintf(pp.out(), "%s %s", e.Date, e.Created().Local().Format("15:04"))
		if m := e.Minutes(); m > 0 {
			_, _ = f.Fprintf(pp.out(), "  %6s", timeutil.FormatMinutes(m))
		} else {
			_, _ = f.Fprintf(pp.out(), "  %6s", "")
		}
		if v, ok := e.Answer(question.ConcentrationID); ok {
			_, _ = t.Fprintf(pp.out(), "  %s", glyph.Answer(question.KindRating, v))
		}
		if notes := e.NotesText(); notes != "" {
			_, _ = f.Fprintf(pp.out(), "  %s", snippet(notes, 40))
		}
		_, _ = t.Fprintln(pp.out(), "")
	}
	_, _ = t.Fprintln(pp.out(), "")
}

// Entry prints every answer of e in question order. Answers to questions
// that no longer exist are listed last under their raw id.
func (pp *PrettyPrint) Entry(e entry.Entry, questions []question.Question) {
	b := color.New(color.Bold)
	f := color.New(color.Faint)

	pp.Title(fmt.Sprintf("%s %s", e.Date, e.Created().Local().Format("15:04")))
	if pp.ShowID {
		_, _ = f.Fprintf(pp.out(), "id %s  device %s\n", e.ID, e.DeviceID)
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.Wrap = true
	tbl.MaxColWidth = 60
	known := make(map[string]bool, len(questions))
	for _, q := range questions {
		known[q.ID] = true
		v, ok := e.Answer(q.ID)
		if !ok {
			continue
		}
		tbl.AddRow(q.Text(pp.Language), glyph.Answer(q.Kind, v))
	}
	for _, a := range e.Answers {
		if !known[a.QuestionID] {
			tbl.AddRow(f.Sprintf("(%s)", a.QuestionID), a.Value.String())
			known[a.QuestionID] = true
		}
	}
	if len(tbl.Rows) > 0 {
		_, _ = fmt.Fprintln(pp.out(), tbl)
	}
	if m := e.Minutes(); m > 0 {
		_, _ = b.Fprint(pp.out(), "Duration ")
		_, _ = fmt.Fprintln(pp.out(), timeutil.FormatMinutes(m))
	}
	if notes := e.NotesText(); notes != "" {
		_, _ = b.Fprintln(pp.out(), "Notes")
		_, _ = fmt.Fprintln(pp.out(), notes)
	}
	pp.NewLine()
}

// Sessions prints one line per timer session.
func (pp *PrettyPrint) Sessions(sessions ...session.Session) {
	if len(sessions) == 0 {
		pp.none()
		return
	}

	t := color.New()
	f := color.New(color.Faint)
	for _, s := range sessions {
		pp.id(s.ID)
		_, _ = t.Fprintf(pp.out(), "%s  %6s", s.Date, timeutil.FormatMinutes(s.DurationMinutes))
		if s.HasEntry {
			_, _ = f.Fprint(pp.out(), "  journaled")
		}
		_, _ = t.Fprintln(pp.out(), "")
	}
	_, _ = t.Fprintln(pp.out(), "")
}

// Questions prints the registry as a table in display order.
func (pp *PrettyPrint) Questions(questions ...question.Question) {
	if len(questions) == 0 {
		pp.none()
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	header := []interface{}{glyph.Bold("#"), glyph.Bold("Kind"), glyph.Bold("Question"), glyph.Bold("")}
	if pp.ShowID {
		header = append([]interface{}{glyph.Bold("ID")}, header...)
	}
	tbl.AddRow(header...)
	for _, q := range questions {
		builtin := ""
		if q.IsBuiltin {
			builtin = "built-in"
		}
		row := []interface{}{q.Order, glyph.ForKind(q.Kind).Symbol, q.Text(pp.Language), builtin}
		if pp.ShowID {
			row = append([]interface{}{q.ID}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

func snippet(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
