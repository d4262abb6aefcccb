// Package settings holds the user's preferences record.
package settings

import (
	"encoding/json"
	"fmt"
	"strings"

	"tableflip.dev/meditary/pkg/errs"
	"tableflip.dev/meditary/pkg/question"
)

// Reminder is the daily practice reminder. Scheduling it is up to the host.
type Reminder struct {
	Enabled bool `json:"enabled"`
	Hour    int  `json:"hour"`
	Minute  int  `json:"minute"`
}

// Settings is persisted as one JSON object. Unknown fields are preserved so
// a newer build's settings survive a round trip through an older one.
type Settings struct {
	Language string   `json:"language"`
	Reminder Reminder `json:"reminder"`

	extra map[string]json.RawMessage
}

// Default returns the settings used when nothing is stored.
func Default() Settings {
	return Settings{
		Language: question.LangPrimary,
		Reminder: Reminder{Enabled: false, Hour: 7, Minute: 0},
	}
}

// Languages lists the supported display languages.
func Languages() []string {
	return []string{question.LangPrimary, question.LangSecondary}
}

// Validate checks the language and reminder time.
func (s Settings) Validate() error {
	if !validLanguage(s.Language) {
		return errs.Validationf("settings: unsupported language %q", s.Language)
	}
	if s.Reminder.Hour < 0 || s.Reminder.Hour > 23 {
		return errs.Validationf("settings: reminder hour %d out of range", s.Reminder.Hour)
	}
	if s.Reminder.Minute < 0 || s.Reminder.Minute > 59 {
		return errs.Validationf("settings: reminder minute %d out of range", s.Reminder.Minute)
	}
	return nil
}

// ReminderTime renders the reminder as HH:MM.
func (s Settings) ReminderTime() string {
	return fmt.Sprintf("%02d:%02d", s.Reminder.Hour, s.Reminder.Minute)
}

// ParseReminderTime parses HH:MM.
func ParseReminderTime(v string) (hour, minute int, err error) {
	if _, err := fmt.Sscanf(strings.TrimSpace(v), "%d:%d", &hour, &minute); err != nil {
		return 0, 0, errs.Validationf("settings: reminder time %q must be HH:MM", v)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, errs.Validationf("settings: reminder time %q out of range", v)
	}
	return hour, minute, nil
}

// Decode reads stored settings, falling back to defaults for anything
// missing or invalid.
func Decode(data []byte) (Settings, error) {
	s := Default()
	if len(data) == 0 {
		return s, nil
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return s, err
	}
	if v, ok := raw["language"]; ok {
		var lang string
		if json.Unmarshal(v, &lang) == nil && validLanguage(lang) {
			s.Language = lang
		}
		delete(raw, "language")
	}
	if v, ok := raw["reminder"]; ok {
		r := s.Reminder
		if json.Unmarshal(v, &r) == nil {
			candidate := s
			candidate.Reminder = r
			if candidate.Validate() == nil {
				s.Reminder = r
			}
		}
		delete(raw, "reminder")
	}
	if len(raw) > 0 {
		s.extra = raw
	}
	return s, nil
}

// MarshalJSON writes the known fields plus any preserved unknown ones.
func (s Settings) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(s.extra)+2)
	for k, v := range s.extra {
		out[k] = v
	}
	out["language"] = s.Language
	out["reminder"] = s.Reminder
	return json.Marshal(out)
}

// UnmarshalJSON is Decode in json.Unmarshaler form.
func (s *Settings) UnmarshalJSON(data []byte) error {
	v, err := Decode(data)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func validLanguage(lang string) bool {
	for _, l := range Languages() {
		if l == lang {
			return true
		}
	}
	return false
}
