package quiz

import (
	"github.com/erininge/Time-Game/internal/answer"
	"github.com/erininge/Time-Game/internal/clock"
)

// Kind names one of the four question types.
type Kind string

const (
	KindDigitalToKanji Kind = "dig2kanji"
	KindDigitalToKana  Kind = "dig2kana"
	KindKanjiToDigital Kind = "kanji2dig"
	KindKanaToDigital  Kind = "kana2dig"
)

// Label returns the heading shown above a question of this kind.
func (k Kind) Label() string {
	switch k {
	case KindDigitalToKanji:
		return "Digital → Japanese (漢字)"
	case KindDigitalToKana:
		return "Digital → Japanese (かな)"
	case KindKanjiToDigital:
		return "Japanese (漢字) → Digital"
	case KindKanaToDigital:
		return "Japanese (かな) → Digital"
	}
	return string(k)
}

// Expected holds the canonical renderings shown as feedback.
type Expected struct {
	Kanji string
	Kana  string
	H24   string
	H12   string
}

// Question is a single generated quiz question. It is not modified after
// creation.
type Question struct {
	// Time is the clock time being asked about.
	Time clock.Time

	// Orientation is the resolved direction (never OrientationMixed).
	Orientation Orientation

	// Script is the resolved Japanese script family.
	Script Script

	// Digital is the resolved digital style used for digital prompts.
	Digital DigitalStyle

	// Kind combines orientation and script.
	Kind Kind

	// Prompt is the text the learner converts.
	Prompt string

	// Meta is the heading describing the conversion, see Kind.Label.
	Meta string

	// Accept is the set of normalized answers judged correct.
	Accept answer.Set

	// Expected carries all four canonical renderings for feedback.
	Expected Expected
}

// TargetsDigital reports whether the learner answers with a clock time.
func (q Question) TargetsDigital() bool {
	return q.Orientation == JapaneseToDigital
}

// Check reports whether raw input is an accepted answer.
func (q Question) Check(raw string) bool {
	return q.Accept.Match(raw)
}
