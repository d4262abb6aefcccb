package entry

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"tableflip.dev/meditary/pkg/question"
)

// ValueKind tags which variant a Value holds.
type ValueKind int

const (
	ValueNone ValueKind = iota
	ValueNumber
	ValueText
)

// Value is an answer value: a number for rating questions, text for free
// text and binary questions. On the wire it is a JSON number or string.
type Value struct {
	kind ValueKind
	num  float64
	text string
}

// Number makes a numeric Value.
func Number(n float64) Value {
	return Value{kind: ValueNumber, num: n}
}

// Rating makes a numeric Value from an integer rating.
func Rating(n int) Value {
	return Number(float64(n))
}

// Text makes a textual Value.
func Text(s string) Value {
	return Value{kind: ValueText, text: s}
}

// YesNo makes the binary Value for b.
func YesNo(b bool) Value {
	if b {
		return Text(question.Yes)
	}
	return Text(question.No)
}

func (v Value) Kind() ValueKind { return v.kind }

// Number returns the numeric variant.
func (v Value) Number() (float64, bool) {
	return v.num, v.kind == ValueNumber
}

// Text returns the textual variant.
func (v Value) Text() (string, bool) {
	return v.text, v.kind == ValueText
}

func (v Value) String() string {
	switch v.kind {
	case ValueNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case ValueText:
		return v.text
	}
	return ""
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case ValueNumber:
		if math.IsNaN(v.num) || math.IsInf(v.num, 0) {
			return nil, fmt.Errorf("entry: value %v is not a finite number", v.num)
		}
		return json.Marshal(v.num)
	case ValueText:
		return json.Marshal(v.text)
	}
	return []byte("null"), nil
}

func (v *Value) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*v = Value{}
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = Text(s)
	case bytes.Equal(b, []byte("true")):
		*v = YesNo(true)
	case bytes.Equal(b, []byte("false")):
		*v = YesNo(false)
	default:
		n, err := strconv.ParseFloat(string(b), 64)
		if err != nil {
			return fmt.Errorf("entry: unsupported answer value %s", b)
		}
		*v = Number(n)
	}
	return nil
}

// Answer is the response to one question, embedded in an Entry.
type Answer struct {
	QuestionID string `json:"questionId"`
	Value      Value  `json:"value"`
}

// Validate checks the answer against the kind of the question it answers.
func (a Answer) Validate(q question.Question) error {
	switch q.Kind {
	case question.KindRating:
		n, ok := a.Value.Number()
		if !ok || n != math.Trunc(n) || n < question.MinRating || n > question.MaxRating {
			return fmt.Errorf("answer to %q must be a whole rating from %d to %d, got %q",
				q.ID, question.MinRating, question.MaxRating, a.Value)
		}
	case question.KindBinary:
		s, ok := a.Value.Text()
		if !ok || (s != question.Yes && s != question.No) {
			return fmt.Errorf("answer to %q must be %q or %q, got %q", q.ID, question.Yes, question.No, a.Value)
		}
	case question.KindFreeText:
		if _, ok := a.Value.Text(); !ok {
			return fmt.Errorf("answer to %q must be text, got %q", q.ID, a.Value)
		}
	}
	return nil
}

// ParseValue reads raw user input as a Value appropriate for kind.
func ParseValue(kind question.Kind, raw string) (Value, error) {
	switch kind {
	case question.KindRating:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Value{}, fmt.Errorf("rating %q is not a number", raw)
		}
		return Rating(n), nil
	case question.KindBinary:
		switch raw {
		case "y", "yes", "true", "sim", "s":
			return YesNo(true), nil
		case "n", "no", "false", "nao", "não":
			return YesNo(false), nil
		}
		return Value{}, fmt.Errorf("%q is not yes or no", raw)
	}
	return Text(raw), nil
}
