package question

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"reflect"
	"testing"

	"tableflip.dev/meditary/pkg/errs"
)

func seqIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("q-%d", n)
	}
}

func assertDense(t *testing.T, r *Registry) {
	t.Helper()
	for i, q := range r.List() {
		if q.Order != i {
			t.Fatalf("question %q at position %d has order %d", q.ID, i, q.Order)
		}
	}
}

func ids(qs []Question) []string {
	out := make([]string, len(qs))
	for i, q := range qs {
		out[i] = q.ID
	}
	return out
}

func TestDefaults(t *testing.T) {
	r := DefaultRegistry(nil)
	list := r.List()
	if len(list) != 10 {
		t.Fatalf("expected 10 defaults, got %d", len(list))
	}
	for i, q := range list {
		if !q.IsBuiltin || q.Order != i {
			t.Fatalf("unexpected default %+v", q)
		}
	}
	if list[0].ID != ConcentrationID || list[0].Kind != KindRating {
		t.Fatalf("expected concentration rating first, got %+v", list[0])
	}
	// Defaults hands out copies.
	d := Defaults()
	d[0].TextPrimary = "changed"
	if Defaults()[0].TextPrimary == "changed" {
		t.Fatalf("defaults must not be shared")
	}
}

func TestAdd(t *testing.T) {
	r := DefaultRegistry(seqIDs())
	q, err := r.Add("  Breath count? ", "Contagem da respiração?", KindRating)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.ID != "q-1" || q.Order != 10 || q.IsBuiltin || q.TextPrimary != "Breath count?" {
		t.Fatalf("unexpected question %+v", q)
	}
	if r.Len() != 11 {
		t.Fatalf("expected 11 questions, got %d", r.Len())
	}
}

func TestAddValidation(t *testing.T) {
	r := DefaultRegistry(seqIDs())
	tests := []struct {
		en, pt string
		kind   Kind
	}{
		{"", "pt", KindFreeText},
		{"en", "   ", KindFreeText},
		{"en", "pt", Kind("scale")},
	}
	for _, tt := range tests {
		if _, err := r.Add(tt.en, tt.pt, tt.kind); !errors.Is(err, errs.ErrValidation) {
			t.Fatalf("expected validation error for %+v, got %v", tt, err)
		}
	}
	if r.Len() != 10 {
		t.Fatalf("failed adds must not change the registry")
	}
}

func TestUpdateKeepsIdentity(t *testing.T) {
	r := DefaultRegistry(seqIDs())
	text := "How focused was I?"
	kind := KindFreeText
	q, err := r.Update(ConcentrationID, Patch{TextPrimary: &text, Kind: &kind})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.ID != ConcentrationID || !q.IsBuiltin || q.TextPrimary != text || q.Kind != KindFreeText {
		t.Fatalf("unexpected question %+v", q)
	}
	if q.TextSecondary != "Minha concentração estava?" {
		t.Fatalf("untouched field changed: %q", q.TextSecondary)
	}
}

func TestUpdateErrors(t *testing.T) {
	r := DefaultRegistry(seqIDs())
	if _, err := r.Update("missing", Patch{}); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	empty := " "
	if _, err := r.Update("eyes", Patch{TextSecondary: &empty}); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if q, _ := r.Get("eyes"); q.TextSecondary != "Olhos estavam?" {
		t.Fatalf("failed update must not apply, got %q", q.TextSecondary)
	}
}

func TestDeleteRenumbers(t *testing.T) {
	r := DefaultRegistry(seqIDs())
	if err := r.Delete("sensation"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := r.Get("sensation"); ok {
		t.Fatalf("expected question to be gone")
	}
	assertDense(t, r)
	got := ids(r.List())
	want := []string{"concentration", "physicalPain", "eyes", "thoughts", "sleepy", "heard", "pranayama", "kechariMudra", "yoniMudra"}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if err := r.Delete("sensation"); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestReorder(t *testing.T) {
	r := DefaultRegistry(seqIDs())
	list := r.List()
	reversed := make([]Question, len(list))
	for i, q := range list {
		reversed[len(list)-1-i] = q
	}
	reversed[0].TextPrimary = "Edited during reorder"
	reversed[0].IsBuiltin = false

	if err := r.Reorder(reversed); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := r.List()
	if got[0].ID != "yoniMudra" || got[0].Order != 0 || got[9].ID != ConcentrationID {
		t.Fatalf("unexpected order %v", ids(got))
	}
	if got[0].TextPrimary != "Edited during reorder" {
		t.Fatalf("expected edits to be kept")
	}
	if !got[0].IsBuiltin {
		t.Fatalf("reorder must not change IsBuiltin")
	}
	assertDense(t, r)
}

func TestReorderRejectsMismatchedSets(t *testing.T) {
	r := DefaultRegistry(seqIDs())
	list := r.List()

	dropped := list[1:]
	dup := append(append([]Question(nil), list[:9]...), list[0])
	foreign := append(append([]Question(nil), list[:9]...), Question{ID: "new", TextPrimary: "a", TextSecondary: "b", Kind: KindFreeText})

	for name, in := range map[string][]Question{"dropped": dropped, "duplicate": dup, "foreign": foreign} {
		if err := r.Reorder(in); !errors.Is(err, errs.ErrValidation) {
			t.Fatalf("%s: expected validation error, got %v", name, err)
		}
	}
	if fmt.Sprint(ids(r.List())) != fmt.Sprint(DefaultIDs()) {
		t.Fatalf("failed reorder must not change the registry")
	}
}

func TestMove(t *testing.T) {
	r := DefaultRegistry(seqIDs())
	if err := r.Move("yoniMudra", 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.List()[0].ID != "yoniMudra" {
		t.Fatalf("expected yoniMudra first, got %v", ids(r.List()))
	}
	if err := r.Move(ConcentrationID, 99); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.List()[9].ID != ConcentrationID {
		t.Fatalf("expected concentration last, got %v", ids(r.List()))
	}
	assertDense(t, r)
}

func TestResetToDefault(t *testing.T) {
	r := DefaultRegistry(seqIDs())
	_, _ = r.Add("a", "b", KindBinary)
	_ = r.Delete(ConcentrationID)
	_ = r.Move("eyes", 5)

	r.ResetToDefault()
	list := r.List()
	if len(list) != 10 {
		t.Fatalf("expected 10 questions, got %d", len(list))
	}
	if fmt.Sprint(ids(list)) != fmt.Sprint(DefaultIDs()) {
		t.Fatalf("unexpected ids %v", ids(list))
	}
	for i, q := range list {
		if !q.IsBuiltin || q.Order != i {
			t.Fatalf("unexpected question after reset %+v", q)
		}
	}
}

func TestNewRegistryNormalizesStoredOrder(t *testing.T) {
	stored := []Question{
		{ID: "b", TextPrimary: "b", TextSecondary: "b", Kind: KindFreeText, Order: 7},
		{ID: "a", TextPrimary: "a", TextSecondary: "a", Kind: KindFreeText, Order: 2},
	}
	r := NewRegistry(stored, nil)
	if fmt.Sprint(ids(r.List())) != "[a b]" {
		t.Fatalf("unexpected order %v", ids(r.List()))
	}
	assertDense(t, r)
}

func TestCloneIsIndependent(t *testing.T) {
	r := DefaultRegistry(seqIDs())
	c := r.Clone()
	_ = c.Delete(ConcentrationID)
	if r.Len() != 10 || c.Len() != 9 {
		t.Fatalf("clone shares state: %d / %d", r.Len(), c.Len())
	}
}

func TestOrderStaysDenseUnderRandomMutations(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	r := DefaultRegistry(seqIDs())
	for step := 0; step < 500; step++ {
		list := r.List()
		switch op := rng.Intn(4); {
		case op == 0 || len(list) == 0:
			if _, err := r.Add("en", "pt", AllKinds()[rng.Intn(3)]); err != nil {
				t.Fatalf("add: %v", err)
			}
		case op == 1:
			if err := r.Delete(list[rng.Intn(len(list))].ID); err != nil {
				t.Fatalf("delete: %v", err)
			}
		case op == 2:
			rng.Shuffle(len(list), func(i, j int) { list[i], list[j] = list[j], list[i] })
			if err := r.Reorder(list); err != nil {
				t.Fatalf("reorder: %v", err)
			}
		default:
			if err := r.Move(list[rng.Intn(len(list))].ID, rng.Intn(len(list))); err != nil {
				t.Fatalf("move: %v", err)
			}
		}
		assertDense(t, r)
	}
}

func TestParseKind(t *testing.T) {
	tests := map[string]Kind{"rating": KindRating, "TEXT": KindFreeText, "yesno": KindBinary, "binary": KindBinary}
	for in, want := range tests {
		got, err := ParseKind(in)
		if err != nil || got != want {
			t.Fatalf("%q: expected %s, got %s (%v)", in, want, got, err)
		}
	}
	if _, err := ParseKind("slider"); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}

func TestText(t *testing.T) {
	q := Defaults()[5]
	if q.Text("pt") != "Deu sono?" || q.Text("en") != "Did I feel sleepy?" || q.Text("de") != "Did I feel sleepy?" {
		t.Fatalf("unexpected localized text")
	}
}

func TestQuestionJSONRoundTrip(t *testing.T) {
	qs := append(Defaults(), Question{
		ID:            "posture",
		TextPrimary:   "How was my posture?",
		TextSecondary: "Como estava minha postura?",
		Kind:          KindFreeText,
		Order:         10,
	})

	raw, err := json.Marshal(qs)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got []Question
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(got, qs) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, qs)
	}

	var wire []map[string]any
	if err := json.Unmarshal(raw, &wire); err != nil {
		t.Fatalf("unmarshal wire: %v", err)
	}
	first := wire[0]
	for key, want := range map[string]any{
		"id":        ConcentrationID,
		"textEn":    "How was my concentration?",
		"textPt":    "Minha concentração estava?",
		"type":      string(KindRating),
		"isDefault": true,
		"order":     float64(0),
	} {
		if first[key] != want {
			t.Errorf("wire field %q = %v, want %v", key, first[key], want)
		}
	}
	if last := wire[len(wire)-1]; last["isDefault"] != false {
		t.Errorf("custom question isDefault = %v, want false", last["isDefault"])
	}
}
