package export

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"tableflip.dev/meditary/pkg/app"
	"tableflip.dev/meditary/pkg/entry"
	"tableflip.dev/meditary/pkg/errs"
	"tableflip.dev/meditary/pkg/identity"
	"tableflip.dev/meditary/pkg/question"
	"tableflip.dev/meditary/pkg/store"
)

func newService(t *testing.T) *app.Service {
	t.Helper()
	now := time.Date(2025, time.December, 19, 8, 0, 0, 0, time.Local)
	svc := app.New(store.NewMemory(),
		app.WithClock(func() time.Time { return now }),
		app.WithNativeID(identity.NativeFunc(func() (string, bool) { return "host-1", true })),
	)
	require.NoError(t, svc.Load(context.Background()))
	_, err := svc.AddEntry(context.Background(), app.EntryInput{
		Date: "2025-12-19",
		Answers: []entry.Answer{
			{QuestionID: question.ConcentrationID, Value: entry.Rating(4)},
			{QuestionID: "sleepy", Value: entry.YesNo(false)},
		},
	})
	require.NoError(t, err)
	return svc
}

func TestExportJSON(t *testing.T) {
	svc := newService(t)
	var buf bytes.Buffer
	require.NoError(t, (&Export{Service: svc, Format: FormatJSON, Out: &buf}).Do(context.Background()))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "host-1", got["deviceId"])
	entries := got["entries"].([]any)
	require.Len(t, entries, 1)
	answers := entries[0].(map[string]any)["answers"].([]any)
	assert.Equal(t, float64(4), answers[0].(map[string]any)["value"])
	assert.Equal(t, "no", answers[1].(map[string]any)["value"])
}

func TestExportYAMLKeepsWireNames(t *testing.T) {
	svc := newService(t)
	var buf bytes.Buffer
	require.NoError(t, (&Export{Service: svc, Format: FormatYAML, Out: &buf}).Do(context.Background()))

	out := buf.String()
	assert.Contains(t, out, "deviceId: host-1")
	assert.Contains(t, out, "questionId: concentration")
	assert.NotContains(t, out, "{", "collections are written in block style")

	var got struct {
		Entries []struct {
			Date string `yaml:"date"`
		} `yaml:"entries"`
		Questions []map[string]any `yaml:"questions"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got.Entries, 1)
	assert.Equal(t, "2025-12-19", got.Entries[0].Date)
	assert.Len(t, got.Questions, 10)
}

func TestEncodeUnknownFormat(t *testing.T) {
	_, err := Encode(map[string]int{"a": 1}, "toml")
	assert.ErrorIs(t, err, errs.ErrValidation)
}
