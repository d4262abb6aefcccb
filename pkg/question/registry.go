package question

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"tableflip.dev/meditary/pkg/errs"
)

// Patch carries the fields Update may change. Nil fields are left alone.
type Patch struct {
	TextPrimary   *string
	TextSecondary *string
	Kind          *Kind
}

// Registry is the ordered question list. After every mutation the Order
// fields form the dense sequence 0..N-1 matching list position.
type Registry struct {
	items []Question
	newID func() string
}

// NewRegistry builds a registry from items, sorting by Order and renumbering.
// A nil newID generates random UUIDs.
func NewRegistry(items []Question, newID func() string) *Registry {
	if newID == nil {
		newID = uuid.NewString
	}
	sorted := append([]Question(nil), items...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})
	r := &Registry{items: sorted, newID: newID}
	r.normalize()
	return r
}

// DefaultRegistry returns a registry seeded with the built-in questions.
func DefaultRegistry(newID func() string) *Registry {
	return NewRegistry(Defaults(), newID)
}

// Clone returns an independent copy sharing the id generator.
func (r *Registry) Clone() *Registry {
	return &Registry{items: append([]Question(nil), r.items...), newID: r.newID}
}

// List returns the questions sorted by Order.
func (r *Registry) List() []Question {
	return append([]Question(nil), r.items...)
}

func (r *Registry) Len() int {
	return len(r.items)
}

// Get returns the question with id. Callers use it as a nullable lookup for
// answers whose question may have been deleted.
func (r *Registry) Get(id string) (Question, bool) {
	if i := r.index(id); i >= 0 {
		return r.items[i], true
	}
	return Question{}, false
}

// Add appends a custom question.
func (r *Registry) Add(textPrimary, textSecondary string, kind Kind) (Question, error) {
	primary, secondary, err := validateTexts(textPrimary, textSecondary)
	if err != nil {
		return Question{}, err
	}
	if !kind.Valid() {
		return Question{}, errs.Validationf("question: unknown kind %q", kind)
	}
	q := Question{
		ID:            r.newID(),
		TextPrimary:   primary,
		TextSecondary: secondary,
		Kind:          kind,
		IsBuiltin:     false,
		Order:         len(r.items),
	}
	r.items = append(r.items, q)
	return q, nil
}

// Update merges p into the question with id. ID and IsBuiltin never change.
func (r *Registry) Update(id string, p Patch) (Question, error) {
	i := r.index(id)
	if i < 0 {
		return Question{}, errs.NotFoundf("question %q", id)
	}
	q := r.items[i]
	if p.TextPrimary != nil {
		q.TextPrimary = *p.TextPrimary
	}
	if p.TextSecondary != nil {
		q.TextSecondary = *p.TextSecondary
	}
	if p.Kind != nil {
		if !p.Kind.Valid() {
			return Question{}, errs.Validationf("question: unknown kind %q", *p.Kind)
		}
		q.Kind = *p.Kind
	}
	primary, secondary, err := validateTexts(q.TextPrimary, q.TextSecondary)
	if err != nil {
		return Question{}, err
	}
	q.TextPrimary, q.TextSecondary = primary, secondary
	r.items[i] = q
	return q, nil
}

// Delete removes the question and renumbers the rest in their existing
// relative order. Answers referencing id elsewhere are not touched.
func (r *Registry) Delete(id string) error {
	i := r.index(id)
	if i < 0 {
		return errs.NotFoundf("question %q", id)
	}
	r.items = append(r.items[:i], r.items[i+1:]...)
	r.normalize()
	return nil
}

// Reorder replaces the list with ordered, a permutation of the current
// questions that may carry edited texts or kinds. Order becomes each
// element's index. The id set must match exactly.
func (r *Registry) Reorder(ordered []Question) error {
	if len(ordered) != len(r.items) {
		return errs.Validationf("question: reorder expects %d questions, got %d", len(r.items), len(ordered))
	}
	seen := make(map[string]bool, len(ordered))
	next := make([]Question, len(ordered))
	for pos, q := range ordered {
		current, ok := r.Get(q.ID)
		if !ok {
			return errs.Validationf("question: reorder references unknown question %q", q.ID)
		}
		if seen[q.ID] {
			return errs.Validationf("question: reorder repeats question %q", q.ID)
		}
		seen[q.ID] = true
		primary, secondary, err := validateTexts(q.TextPrimary, q.TextSecondary)
		if err != nil {
			return err
		}
		if !q.Kind.Valid() {
			return errs.Validationf("question: unknown kind %q", q.Kind)
		}
		next[pos] = Question{
			ID:            current.ID,
			TextPrimary:   primary,
			TextSecondary: secondary,
			Kind:          q.Kind,
			IsBuiltin:     current.IsBuiltin,
			Order:         pos,
		}
	}
	r.items = next
	return nil
}

// Move shifts the question with id to position to, clamped to the list.
func (r *Registry) Move(id string, to int) error {
	i := r.index(id)
	if i < 0 {
		return errs.NotFoundf("question %q", id)
	}
	if to < 0 {
		to = 0
	}
	if to >= len(r.items) {
		to = len(r.items) - 1
	}
	ordered := r.List()
	q := ordered[i]
	ordered = append(ordered[:i], ordered[i+1:]...)
	ordered = append(ordered[:to], append([]Question{q}, ordered[to:]...)...)
	return r.Reorder(ordered)
}

// ResetToDefault discards every custom question and restores the built-ins.
func (r *Registry) ResetToDefault() {
	r.items = Defaults()
}

func (r *Registry) index(id string) int {
	for i := range r.items {
		if r.items[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *Registry) normalize() {
	for i := range r.items {
		r.items[i].Order = i
	}
}

func validateTexts(primary, secondary string) (string, string, error) {
	primary = strings.TrimSpace(primary)
	secondary = strings.TrimSpace(secondary)
	if primary == "" {
		return "", "", errs.Validationf("question: %s text required", LangPrimary)
	}
	if secondary == "" {
		return "", "", errs.Validationf("question: %s text required", LangSecondary)
	}
	return primary, secondary, nil
}
