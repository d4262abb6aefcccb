package question

import (
	"strings"

	"tableflip.dev/meditary/pkg/errs"
)

// Kind identifies how a question is answered.
type Kind string

const (
	// KindRating is answered with an integer from MinRating to MaxRating.
	KindRating Kind = "rating"
	// KindFreeText is answered with arbitrary text.
	KindFreeText Kind = "text"
	// KindBinary is answered with Yes or No.
	KindBinary Kind = "yesno"
)

// Rating bounds and binary answer values.
const (
	MinRating = 1
	MaxRating = 5

	Yes = "yes"
	No  = "no"
)

// AllKinds returns the list of supported kinds.
func AllKinds() []Kind {
	return []Kind{
		KindRating,
		KindFreeText,
		KindBinary,
	}
}

// ParseKind converts a string to a Kind or returns an error for unknown values.
// "binary" and "freetext" are accepted as aliases.
func ParseKind(raw string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(raw)))
	switch k {
	case "binary", "yes/no":
		return KindBinary, nil
	case "freetext", "free-text":
		return KindFreeText, nil
	}
	if k.Valid() {
		return k, nil
	}
	return "", errs.Validationf("question: unknown kind %q", raw)
}

// Valid reports whether k is one of AllKinds.
func (k Kind) Valid() bool {
	for _, candidate := range AllKinds() {
		if candidate == k {
			return true
		}
	}
	return false
}
