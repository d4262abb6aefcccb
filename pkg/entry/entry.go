// Package entry defines meditation journal entries and the store that owns
// them.
package entry

import (
	"errors"
	"fmt"

	"tableflip.dev/meditary/pkg/errs"
	"tableflip.dev/meditary/pkg/question"
	"tableflip.dev/meditary/pkg/timeutil"
)

// Entry is one journal record for a calendar day.
type Entry struct {
	ID              string   `json:"id"`
	Date            string   `json:"date"`
	Timestamp       int64    `json:"timestamp"`
	DeviceID        string   `json:"deviceId"`
	Answers         []Answer `json:"answers"`
	Notes           *string  `json:"notes,omitempty"`
	DurationMinutes *int     `json:"durationMinutes,omitempty"`
}

// Day parses the entry date. Malformed dates report false.
func (e Entry) Day() (timeutil.Date, bool) {
	d, err := timeutil.ParseDate(e.Date)
	return d, err == nil
}

// Answer returns the value answered for questionID. Duplicate answers are
// tolerated and the last one wins.
func (e Entry) Answer(questionID string) (Value, bool) {
	for i := len(e.Answers) - 1; i >= 0; i-- {
		if e.Answers[i].QuestionID == questionID {
			return e.Answers[i].Value, true
		}
	}
	return Value{}, false
}

// Minutes returns the recorded duration or zero.
func (e Entry) Minutes() int {
	if e.DurationMinutes == nil {
		return 0
	}
	return *e.DurationMinutes
}

// NotesText returns the notes or the empty string.
func (e Entry) NotesText() string {
	if e.Notes == nil {
		return ""
	}
	return *e.Notes
}

// Clone deep-copies the entry.
func (e Entry) Clone() Entry {
	cp := e
	cp.Answers = append([]Answer{}, e.Answers...)
	if e.Notes != nil {
		n := *e.Notes
		cp.Notes = &n
	}
	if e.DurationMinutes != nil {
		d := *e.DurationMinutes
		cp.DurationMinutes = &d
	}
	return cp
}

// Lookup resolves a question by id. It reports false for questions that no
// longer exist.
type Lookup func(id string) (question.Question, bool)

// ValidateAnswers checks every answer whose question still exists against
// that question's kind. Answers to unknown questions are kept as-is.
func ValidateAnswers(answers []Answer, lookup Lookup) error {
	if lookup == nil {
		return nil
	}
	var problems []error
	for _, a := range answers {
		q, ok := lookup(a.QuestionID)
		if !ok {
			continue
		}
		if err := a.Validate(q); err != nil {
			problems = append(problems, err)
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %w", errs.ErrValidation, errors.Join(problems...))
	}
	return nil
}
