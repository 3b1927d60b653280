// Package quiz generates randomized clock-reading questions.
package quiz

import (
	"fmt"

	"github.com/erininge/Time-Game/internal/answer"
	"github.com/erininge/Time-Game/internal/clock"
	"github.com/erininge/Time-Game/internal/reading"
)

// Generator produces questions for one set of settings.
type Generator struct {
	settings Settings
	rnd      RandomSource
	builder  answer.Builder
}

// NewGenerator validates settings and returns a Generator drawing from rnd.
// A nil rnd uses NewRandomSource.
func NewGenerator(settings Settings, rnd RandomSource) (*Generator, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("new generator: %w", err)
	}
	if rnd == nil {
		rnd = NewRandomSource()
	}
	return &Generator{
		settings: settings,
		rnd:      rnd,
		builder:  answer.NewBuilder(answer.Options{CrossScriptEra: settings.CrossScriptEra}),
	}, nil
}

// Settings returns the settings the generator was built with.
func (g *Generator) Settings() Settings {
	return g.settings
}

// Next draws a random time and builds a question for it.
func (g *Generator) Next() Question {
	hour := g.rnd.IntN(24)
	minute := PickMinute(g.settings.Minutes, g.rnd)
	orientation := ResolveOrientation(g.settings.Orientation, g.rnd)
	script := ResolveScript(g.settings.Script, g.rnd)
	digital := ResolveDigital(g.settings.Digital, g.rnd)

	return g.Build(clock.MustNew(hour, minute), orientation, script, digital)
}

// Build assembles the question for t with fully resolved choices.
func (g *Generator) Build(t clock.Time, orientation Orientation, script Script, digital DigitalStyle) Question {
	r := reading.For(t)
	d := clock.FormatDigital(t)

	q := Question{
		Time:        t,
		Orientation: orientation,
		Script:      script,
		Digital:     digital,
		Expected: Expected{
			Kanji: r.Kanji(),
			Kana:  r.Kana(),
			H24:   d.H24,
			H12:   d.H12,
		},
	}

	if orientation == JapaneseToDigital {
		q.Kind = KindKanaToDigital
		q.Prompt = r.Kana()
		if script == ScriptKanji {
			q.Kind = KindKanjiToDigital
			q.Prompt = r.Kanji()
		}
		q.Accept = g.builder.Digital(d)
	} else {
		q.Kind = KindDigitalToKana
		if script == ScriptKanji {
			q.Kind = KindDigitalToKanji
		}
		q.Prompt = d.H24
		if digital == Digital12h {
			q.Prompt = d.H12
		}
		if g.settings.ScriptCheck == ScriptCheckMerged {
			q.Accept = g.builder.Merged(r)
		} else {
			q.Accept = g.builder.Japanese(r, answer.Script(script))
		}
	}

	q.Meta = q.Kind.Label()
	return q
}
