// Package question defines journal prompts and the ordered, user-editable
// registry of them.
package question

import "strings"

// ConcentrationID is the built-in rating question averaged by statistics.
const ConcentrationID = "concentration"

// Languages a question carries display text for.
const (
	LangPrimary   = "en"
	LangSecondary = "pt"
)

// Question is a configurable journal prompt.
type Question struct {
	ID            string `json:"id"`
	TextPrimary   string `json:"textEn"`
	TextSecondary string `json:"textPt"`
	Kind          Kind   `json:"type"`
	IsBuiltin     bool   `json:"isDefault"`
	Order         int    `json:"order"`
}

// Text returns the display string for lang, falling back to the primary text.
func (q Question) Text(lang string) string {
	if strings.EqualFold(lang, LangSecondary) && q.TextSecondary != "" {
		return q.TextSecondary
	}
	return q.TextPrimary
}

// Defaults returns a fresh copy of the ten built-in questions.
func Defaults() []Question {
	seed := []struct {
		id, en, pt string
		kind       Kind
	}{
		{ConcentrationID, "How was my concentration?", "Minha concentração estava?", KindRating},
		{"physicalPain", "Any physical pain?", "Alguma dor física?", KindFreeText},
		{"eyes", "How were my eyes?", "Olhos estavam?", KindFreeText},
		{"sensation", "What sensation emerged?", "Qual foi sensação que emergiu?", KindFreeText},
		{"thoughts", "Many thoughts during?", "Muitos pensamentos durante?", KindBinary},
		{"sleepy", "Did I feel sleepy?", "Deu sono?", KindBinary},
		{"heard", "What did I hear?", "O que escutei?", KindFreeText},
		{"pranayama", "What did I notice in pranayama?", "O que percebi no pranayama?", KindFreeText},
		{"kechariMudra", "How was the kechari mudra?", "Como foi o kechari mudra?", KindFreeText},
		{"yoniMudra", "How was the yoni mudra?", "Como foi o yoni mudra?", KindFreeText},
	}
	out := make([]Question, len(seed))
	for i, s := range seed {
		out[i] = Question{
			ID:            s.id,
			TextPrimary:   s.en,
			TextSecondary: s.pt,
			Kind:          s.kind,
			IsBuiltin:     true,
			Order:         i,
		}
	}
	return out
}

// DefaultIDs returns the ids of the built-in questions in seed order.
func DefaultIDs() []string {
	defaults := Defaults()
	ids := make([]string, len(defaults))
	for i, q := range defaults {
		ids[i] = q.ID
	}
	return ids
}
