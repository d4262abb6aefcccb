// Package entries runs the journal entry commands.
package entries

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"tableflip.dev/meditary/pkg/app"
	"tableflip.dev/meditary/pkg/entry"
	"tableflip.dev/meditary/pkg/errs"
	"tableflip.dev/meditary/pkg/printers"
	"tableflip.dev/meditary/pkg/timeutil"
)

var errNoService = errors.New("entries: no service")

// ParseAnswers turns question id to raw input pairs into typed answers,
// ordered like the question registry. Unknown ids are rejected here even
// though stored entries may reference removed questions.
func ParseAnswers(svc *app.Service, raw map[string]string) ([]entry.Answer, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	seen := make(map[string]bool, len(raw))
	var answers []entry.Answer
	for _, q := range svc.Questions() {
		in, ok := raw[q.ID]
		if !ok {
			continue
		}
		seen[q.ID] = true
		v, err := entry.ParseValue(q.Kind, strings.TrimSpace(in))
		if err != nil {
			return nil, errs.Validationf("answer to %q: %v", q.ID, err)
		}
		answers = append(answers, entry.Answer{QuestionID: q.ID, Value: v})
	}
	var unknown []string
	for id := range raw {
		if !seen[id] {
			unknown = append(unknown, id)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, errs.NotFoundf("no question with id %s", strings.Join(unknown, ", "))
	}
	return answers, nil
}

func parseMinutes(raw string) (*int, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	m, err := timeutil.ParseMinutes(raw)
	if err != nil {
		return nil, errs.Validationf("duration: %v", err)
	}
	return &m, nil
}

type Add struct {
	Service   *app.Service
	Printer   printers.PrettyPrint
	Date      string
	Answers   map[string]string
	Notes     string
	Duration  string
	SessionID string
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	answers, err := ParseAnswers(n.Service, n.Answers)
	if err != nil {
		return err
	}
	minutes, err := parseMinutes(n.Duration)
	if err != nil {
		return err
	}
	in := app.EntryInput{
		Date:            n.Date,
		Answers:         answers,
		DurationMinutes: minutes,
		SessionID:       n.SessionID,
	}
	if strings.TrimSpace(n.Notes) != "" {
		notes := n.Notes
		in.Notes = &notes
	}
	e, err := n.Service.AddEntry(ctx, in)
	if err != nil {
		return err
	}
	n.Printer.Entry(e, n.Service.Questions())
	return nil
}

type List struct {
	Service *app.Service
	Printer printers.PrettyPrint
	// Month is YYYY-MM; empty lists everything.
	Month string
	// Last limits output to the newest N entries when positive.
	Last int
}

func (n *List) Do(_ context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	title := "Entries"
	all := n.Service.Entries()
	if n.Month != "" {
		year, month, err := timeutil.ParseMonth(n.Month)
		if err != nil {
			return errs.Validationf("%v", err)
		}
		all = n.Service.EntriesForMonth(year, month)
		title = fmt.Sprintf("%s %d", month, year)
	}
	total := len(all)
	if n.Last > 0 && len(all) > n.Last {
		all = all[:n.Last]
	}
	n.Printer.TitleWithCount(title, total, "entry", "entries")
	n.Printer.Entries(all...)
	return nil
}

// Show prints entries in full, selected by id or by date.
type Show struct {
	Service *app.Service
	Printer printers.PrettyPrint
	ID      string
	Date    string
}

func (n *Show) Do(_ context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	questions := n.Service.Questions()
	if n.ID != "" {
		e, ok := n.Service.Entry(n.ID)
		if !ok {
			return errs.NotFoundf("entry %q", n.ID)
		}
		n.Printer.Entry(e, questions)
		return nil
	}
	date := n.Date
	if date == "" {
		date = n.Service.Today().String()
	}
	if _, err := timeutil.ParseDate(date); err != nil {
		return errs.Validationf("%v", err)
	}
	found := n.Service.EntriesByDate(date)
	if len(found) == 0 {
		return errs.NotFoundf("no entry on %s", date)
	}
	for _, e := range found {
		n.Printer.Entry(e, questions)
	}
	return nil
}

// Edit applies only the fields that were set.
type Edit struct {
	Service  *app.Service
	Printer  printers.PrettyPrint
	ID       string
	Date     *string
	Answers  map[string]string
	Notes    *string
	Duration *string
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	current, ok := n.Service.Entry(n.ID)
	if !ok {
		return errs.NotFoundf("entry %q", n.ID)
	}
	p := entry.Patch{Date: n.Date, Notes: n.Notes}
	if len(n.Answers) > 0 {
		changed, err := ParseAnswers(n.Service, n.Answers)
		if err != nil {
			return err
		}
		p.Answers = mergeAnswers(current.Answers, changed)
	}
	if n.Duration != nil {
		// An empty duration clears it.
		m, err := parseMinutes(*n.Duration)
		if err != nil {
			return err
		}
		if m == nil {
			m = new(int)
		}
		p.DurationMinutes = m
	}
	e, err := n.Service.UpdateEntry(ctx, n.ID, p)
	if err != nil {
		return err
	}
	n.Printer.Entry(e, n.Service.Questions())
	return nil
}

// mergeAnswers replaces answers to the same question and appends new ones,
// keeping answers to removed questions untouched.
func mergeAnswers(current, changed []entry.Answer) []entry.Answer {
	out := append([]entry.Answer{}, current...)
	for _, c := range changed {
		replaced := false
		for i := range out {
			if out[i].QuestionID == c.QuestionID {
				out[i] = c
				replaced = true
			}
		}
		if !replaced {
			out = append(out, c)
		}
	}
	return out
}

type Delete struct {
	Service *app.Service
	ID      string
}

func (n *Delete) Do(ctx context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	if err := n.Service.DeleteEntry(ctx, n.ID); err != nil {
		return err
	}
	fmt.Printf("deleted entry %s\n", n.ID)
	return nil
}
