package settings

import (
	"encoding/json"
	"errors"
	"testing"

	"tableflip.dev/meditary/pkg/errs"
)

func TestDecodeMissingIsDefault(t *testing.T) {
	s, err := Decode(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Language != "en" || s.Reminder.Enabled || s.ReminderTime() != "07:00" {
		t.Fatalf("unexpected defaults %+v", s)
	}
}

func TestDecodePartial(t *testing.T) {
	s, err := Decode([]byte(`{"language":"pt"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Language != "pt" || s.ReminderTime() != "07:00" {
		t.Fatalf("unexpected settings %+v", s)
	}
}

func TestDecodeInvalidFieldsFallBack(t *testing.T) {
	s, err := Decode([]byte(`{"language":"de","reminder":{"enabled":true,"hour":42,"minute":0}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Language != "en" || s.Reminder.Enabled {
		t.Fatalf("expected defaults for invalid fields, got %+v", s)
	}
}

func TestRoundTripPreservesUnknownFields(t *testing.T) {
	var s Settings
	if err := json.Unmarshal([]byte(`{"language":"pt","theme":"dark"}`), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	s.Reminder = Reminder{Enabled: true, Hour: 6, Minute: 30}
	b, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		t.Fatalf("unmarshal raw: %v", err)
	}
	if raw["theme"] != "dark" || raw["language"] != "pt" {
		t.Fatalf("unexpected output %s", b)
	}
	var back Settings
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal back: %v", err)
	}
	if back.Reminder != s.Reminder || back.Language != "pt" {
		t.Fatalf("round trip mismatch %+v", back)
	}
}

func TestValidate(t *testing.T) {
	s := Default()
	s.Language = "fr"
	if err := s.Validate(); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	s = Default()
	s.Reminder.Minute = 60
	if err := s.Validate(); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestParseReminderTime(t *testing.T) {
	h, m, err := ParseReminderTime("06:45")
	if err != nil || h != 6 || m != 45 {
		t.Fatalf("unexpected %d:%d %v", h, m, err)
	}
	for _, in := range []string{"noon", "24:00", "7:60"} {
		if _, _, err := ParseReminderTime(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}
