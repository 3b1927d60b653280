package answer

import (
	"fmt"

	"github.com/erininge/Time-Game/internal/clock"
	"github.com/erininge/Time-Game/internal/reading"
)

// Script is the script family of a Japanese answer.
type Script string

const (
	ScriptKanji Script = "kanji"
	ScriptKana  Script = "kana"
)

// Options tunes how lenient Japanese accept-sets are.
type Options struct {
	// CrossScriptEra accepts a kanji time with a kana era marker
	// (ごぜん九時) and a kana time with a kanji era marker (午前くじ).
	CrossScriptEra bool
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{CrossScriptEra: true}
}

// Builder produces accept-sets for questions.
type Builder struct {
	Options Options
}

// NewBuilder returns a Builder with the given options.
func NewBuilder(opts Options) Builder {
	return Builder{Options: opts}
}

// Japanese returns the accept-set for a Japanese answer in one script
// family. Era markers are always optional.
func (b Builder) Japanese(r reading.Reading, script Script) Set {
	switch script {
	case ScriptKanji:
		return NewSet(b.kanjiForms(r)...)
	case ScriptKana:
		return NewSet(b.kanaForms(r)...)
	default:
		panic(fmt.Sprintf("answer: unknown script %q", script))
	}
}

// Merged returns the union of the kanji and kana accept-sets.
func (b Builder) Merged(r reading.Reading) Set {
	return NewSet(append(b.kanjiForms(r), b.kanaForms(r)...)...)
}

// Digital returns the accept-set for a digital answer: the 24-hour form
// and every casing and punctuation variant of the 12-hour form.
func (b Builder) Digital(d clock.Digital) Set {
	return NewSet(d.Variants()...)
}

func (b Builder) kanjiForms(r reading.Reading) []string {
	forms := []string{
		r.Kanji(),
		r.KanjiCore,
		r.EraKanji + r.ArabicCore,
		r.ArabicCore,
	}
	if b.Options.CrossScriptEra {
		forms = append(forms,
			r.EraKana+r.KanjiCore,
			r.EraKana+r.ArabicCore,
		)
	}
	return forms
}

func (b Builder) kanaForms(r reading.Reading) []string {
	forms := r.KanaForms()
	forms = append(forms, r.KanaCores...)
	if b.Options.CrossScriptEra {
		for _, c := range r.KanaCores {
			forms = append(forms, r.EraKanji+c)
		}
	}
	return forms
}
