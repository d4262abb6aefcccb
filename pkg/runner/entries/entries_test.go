package entries

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/meditary/pkg/app"
	"tableflip.dev/meditary/pkg/entry"
	"tableflip.dev/meditary/pkg/errs"
	"tableflip.dev/meditary/pkg/identity"
	"tableflip.dev/meditary/pkg/printers"
	"tableflip.dev/meditary/pkg/question"
	"tableflip.dev/meditary/pkg/store"
)

func newService(t *testing.T) *app.Service {
	t.Helper()
	now := time.Date(2025, time.December, 19, 8, 0, 0, 0, time.Local)
	svc := app.New(store.NewMemory(),
		app.WithClock(func() time.Time { return now }),
		app.WithNativeID(identity.None),
	)
	require.NoError(t, svc.Load(context.Background()))
	return svc
}

func TestParseAnswers(t *testing.T) {
	svc := newService(t)

	answers, err := ParseAnswers(svc, map[string]string{
		"sleepy":                 "y",
		question.ConcentrationID: " 4 ",
		"eyes":                   "half open",
	})
	require.NoError(t, err)
	require.Len(t, answers, 3)
	assert.Equal(t, question.ConcentrationID, answers[0].QuestionID, "ordered like the registry")
	assert.Equal(t, entry.Rating(4), answers[0].Value)

	_, err = ParseAnswers(svc, map[string]string{question.ConcentrationID: "great"})
	assert.ErrorIs(t, err, errs.ErrValidation)

	_, err = ParseAnswers(svc, map[string]string{"nope": "x"})
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestAddThenEdit(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	var buf bytes.Buffer
	pp := printers.PrettyPrint{Out: &buf}

	add := &Add{
		Service:  svc,
		Printer:  pp,
		Answers:  map[string]string{question.ConcentrationID: "3", "eyes": "closed"},
		Notes:    "first sit",
		Duration: "25m",
	}
	require.NoError(t, add.Do(ctx))
	all := svc.Entries()
	require.Len(t, all, 1)
	assert.Equal(t, 25, all[0].Minutes())
	assert.Equal(t, "2025-12-19", all[0].Date)

	empty := ""
	edit := &Edit{
		Service:  svc,
		Printer:  pp,
		ID:       all[0].ID,
		Answers:  map[string]string{question.ConcentrationID: "5"},
		Duration: &empty,
	}
	require.NoError(t, edit.Do(ctx))
	got, ok := svc.Entry(all[0].ID)
	require.True(t, ok)
	v, _ := got.Answer(question.ConcentrationID)
	assert.Equal(t, entry.Rating(5), v)
	eyes, ok := got.Answer("eyes")
	require.True(t, ok, "untouched answers survive an edit")
	assert.Equal(t, entry.Text("closed"), eyes)
	assert.Nil(t, got.DurationMinutes)
}

func TestShowMissingDate(t *testing.T) {
	svc := newService(t)
	show := &Show{Service: svc, Printer: printers.PrettyPrint{Out: &bytes.Buffer{}}, Date: "2025-12-01"}
	assert.ErrorIs(t, show.Do(context.Background()), errs.ErrNotFound)
}

func TestMergeAnswers(t *testing.T) {
	current := []entry.Answer{
		{QuestionID: "removed", Value: entry.Text("old")},
		{QuestionID: "a", Value: entry.Text("1")},
	}
	got := mergeAnswers(current, []entry.Answer{
		{QuestionID: "a", Value: entry.Text("2")},
		{QuestionID: "b", Value: entry.Text("3")},
	})
	assert.Equal(t, []entry.Answer{
		{QuestionID: "removed", Value: entry.Text("old")},
		{QuestionID: "a", Value: entry.Text("2")},
		{QuestionID: "b", Value: entry.Text("3")},
	}, got)
	assert.Equal(t, "1", current[1].Value.String(), "input is not modified")
}
