package quiz

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/erininge/Time-Game/internal/clock"
)

// scripted returns its values in order, reduced modulo n.
type scripted struct {
	values []int
	pos    int
}

func (s *scripted) IntN(n int) int {
	if s.pos >= len(s.values) {
		return 0
	}
	v := s.values[s.pos] % n
	s.pos++
	return v
}

func TestSettingsValidate(t *testing.T) {
	valid := DefaultSettings()
	if err := valid.Validate(); err != nil {
		t.Fatalf("DefaultSettings().Validate() = %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Settings)
		field  string
	}{
		{"zero questions", func(s *Settings) { s.Questions = 0 }, "questions"},
		{"negative questions", func(s *Settings) { s.Questions = -3 }, "questions"},
		{"bad orientation", func(s *Settings) { s.Orientation = "sideways" }, "orientation"},
		{"bad script", func(s *Settings) { s.Script = "romaji" }, "script"},
		{"bad digital", func(s *Settings) { s.Digital = "h36" }, "digital"},
		{"bad minutes", func(s *Settings) { s.Minutes = "odd" }, "minutes"},
		{"bad script check", func(s *Settings) { s.ScriptCheck = "loose" }, "script_check"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.mutate(&s)
			err := s.Validate()
			var se *SettingsError
			if !errors.As(err, &se) {
				t.Fatalf("Validate() = %v, want *SettingsError", err)
			}
			if se.Field != tt.field {
				t.Errorf("Field = %q, want %q", se.Field, tt.field)
			}
		})
	}
}

func TestNewGenerator_RejectsInvalidSettings(t *testing.T) {
	s := DefaultSettings()
	s.Questions = 0
	if _, err := NewGenerator(s, nil); err == nil {
		t.Fatal("expected error for invalid settings")
	}
}

func TestResolve_ConcreteUnchanged(t *testing.T) {
	rnd := &scripted{}
	if got := ResolveOrientation(JapaneseToDigital, rnd); got != JapaneseToDigital {
		t.Errorf("ResolveOrientation = %q", got)
	}
	if got := ResolveScript(ScriptKana, rnd); got != ScriptKana {
		t.Errorf("ResolveScript = %q", got)
	}
	if got := ResolveDigital(Digital24h, rnd); got != Digital24h {
		t.Errorf("ResolveDigital = %q", got)
	}
	if rnd.pos != 0 {
		t.Errorf("concrete settings consumed %d random values", rnd.pos)
	}
}

func TestResolve_MixedUsesCoin(t *testing.T) {
	heads := &scripted{values: []int{0, 0, 0}}
	if got := ResolveOrientation(OrientationMixed, heads); got != JapaneseToDigital {
		t.Errorf("heads orientation = %q", got)
	}
	if got := ResolveScript(ScriptMixed, heads); got != ScriptKanji {
		t.Errorf("heads script = %q", got)
	}
	if got := ResolveDigital(DigitalMixed, heads); got != Digital12h {
		t.Errorf("heads digital = %q", got)
	}

	tails := &scripted{values: []int{1, 1, 1}}
	if got := ResolveOrientation(OrientationMixed, tails); got != DigitalToJapanese {
		t.Errorf("tails orientation = %q", got)
	}
	if got := ResolveScript(ScriptMixed, tails); got != ScriptKana {
		t.Errorf("tails script = %q", got)
	}
	if got := ResolveDigital(DigitalMixed, tails); got != Digital24h {
		t.Errorf("tails digital = %q", got)
	}
}

func TestPickMinute_Round(t *testing.T) {
	for i := 0; i < 12; i++ {
		if got := PickMinute(MinutesRound, &scripted{values: []int{i}}); got != i*5 {
			t.Errorf("PickMinute(round, %d) = %d, want %d", i, got, i*5)
		}
	}
	if got := PickMinute(MinutesRound, &scripted{values: []int{12, 37}}); got != 37 {
		t.Errorf("PickMinute(round, arbitrary) = %d, want 37", got)
	}
}

func TestPickMinute_Range(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))
	for range 2000 {
		for _, m := range []Minutes{MinutesRound, MinutesAny} {
			if got := PickMinute(m, rnd); got < 0 || got > 59 {
				t.Fatalf("PickMinute(%s) = %d out of range", m, got)
			}
		}
	}
}

func TestGenerator_Next_Scripted(t *testing.T) {
	s := DefaultSettings()
	s.Minutes = MinutesAny
	// hour 15, minute 20, jp2digital, kanji, h12
	g, err := NewGenerator(s, &scripted{values: []int{15, 20, 0, 0, 0}})
	if err != nil {
		t.Fatal(err)
	}

	q := g.Next()
	if q.Time != clock.MustNew(15, 20) {
		t.Errorf("Time = %s, want 15:20", q.Time)
	}
	if q.Kind != KindKanjiToDigital {
		t.Errorf("Kind = %q, want %q", q.Kind, KindKanjiToDigital)
	}
	if q.Prompt != "午後三時二十分" {
		t.Errorf("Prompt = %q", q.Prompt)
	}
	if q.Meta != "Japanese (漢字) → Digital" {
		t.Errorf("Meta = %q", q.Meta)
	}
	if !q.TargetsDigital() {
		t.Error("TargetsDigital() = false")
	}
	for _, a := range []string{"15:20", "3:20 PM", "3:20pm"} {
		if !q.Check(a) {
			t.Errorf("Check(%q) = false", a)
		}
	}
	want := Expected{Kanji: "午後三時二十分", Kana: "ごごさんじにじゅっぷん", H24: "15:20", H12: "3:20 PM"}
	if q.Expected != want {
		t.Errorf("Expected = %+v, want %+v", q.Expected, want)
	}
}

func TestGenerator_Build_Kinds(t *testing.T) {
	g, err := NewGenerator(DefaultSettings(), &scripted{})
	if err != nil {
		t.Fatal(err)
	}
	tv := clock.MustNew(7, 0)

	tests := []struct {
		orientation Orientation
		script      Script
		digital     DigitalStyle
		kind        Kind
		prompt      string
		accepts     string
		rejects     string
	}{
		{DigitalToJapanese, ScriptKanji, Digital12h, KindDigitalToKanji, "7:00 AM", "午前七時", "ごぜんしちじ"},
		{DigitalToJapanese, ScriptKana, Digital24h, KindDigitalToKana, "07:00", "ごぜんななじ", "午前七時"},
		{JapaneseToDigital, ScriptKana, Digital24h, KindKanaToDigital, "ごぜんしちじ", "7:00 a.m.", "ごぜんしちじ"},
		{JapaneseToDigital, ScriptKanji, Digital12h, KindKanjiToDigital, "午前七時", "07:00", "7:00 PM"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			q := g.Build(tv, tt.orientation, tt.script, tt.digital)
			if q.Kind != tt.kind {
				t.Errorf("Kind = %q, want %q", q.Kind, tt.kind)
			}
			if q.Prompt != tt.prompt {
				t.Errorf("Prompt = %q, want %q", q.Prompt, tt.prompt)
			}
			if !q.Check(tt.accepts) {
				t.Errorf("Check(%q) = false", tt.accepts)
			}
			if q.Check(tt.rejects) {
				t.Errorf("Check(%q) = true", tt.rejects)
			}
			if q.Meta != tt.kind.Label() {
				t.Errorf("Meta = %q", q.Meta)
			}
		})
	}
}

func TestGenerator_MergedScriptCheck(t *testing.T) {
	s := DefaultSettings()
	s.ScriptCheck = ScriptCheckMerged
	g, err := NewGenerator(s, &scripted{})
	if err != nil {
		t.Fatal(err)
	}

	q := g.Build(clock.MustNew(9, 5), DigitalToJapanese, ScriptKanji, Digital24h)
	for _, a := range []string{"午前九時五分", "ごぜんくじごふん", "くじごふん"} {
		if !q.Check(a) {
			t.Errorf("merged Check(%q) = false", a)
		}
	}
}

func TestGenerator_NextIsReflexive(t *testing.T) {
	g, err := NewGenerator(DefaultSettings(), rand.New(rand.NewPCG(7, 11)))
	if err != nil {
		t.Fatal(err)
	}
	for range 500 {
		q := g.Next()
		if q.Orientation == OrientationMixed || q.Script == ScriptMixed || q.Digital == DigitalMixed {
			t.Fatalf("unresolved setting in %+v", q)
		}
		var display string
		switch q.Kind {
		case KindDigitalToKanji:
			display = q.Expected.Kanji
		case KindDigitalToKana:
			display = q.Expected.Kana
		default:
			display = q.Expected.H24
		}
		if !q.Check(display) {
			t.Fatalf("%s (%s): expected display %q rejected", q.Time, q.Kind, display)
		}
	}
}
