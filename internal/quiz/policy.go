package quiz

import (
	"math/rand/v2"
)

// RandomSource supplies the randomness for question generation.
// *rand.Rand satisfies it; tests inject a scripted source.
type RandomSource interface {
	// IntN returns a value in [0, n).
	IntN(n int) int
}

// NewRandomSource returns a RandomSource seeded from the runtime.
func NewRandomSource() RandomSource {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

func coin(rnd RandomSource) bool {
	return rnd.IntN(2) == 0
}

// ResolveOrientation turns OrientationMixed into a concrete orientation
// with a fair coin. Concrete values are returned unchanged.
func ResolveOrientation(o Orientation, rnd RandomSource) Orientation {
	if o != OrientationMixed {
		return o
	}
	if coin(rnd) {
		return JapaneseToDigital
	}
	return DigitalToJapanese
}

// ResolveScript turns ScriptMixed into kanji or kana with a fair coin.
func ResolveScript(s Script, rnd RandomSource) Script {
	if s != ScriptMixed {
		return s
	}
	if coin(rnd) {
		return ScriptKanji
	}
	return ScriptKana
}

// ResolveDigital turns DigitalMixed into h12 or h24 with a fair coin.
func ResolveDigital(d DigitalStyle, rnd RandomSource) DigitalStyle {
	if d != DigitalMixed {
		return d
	}
	if coin(rnd) {
		return Digital12h
	}
	return Digital24h
}

// roundChoices is the number of outcomes under MinutesRound: the twelve
// multiples of five plus one arbitrary minute.
const roundChoices = 13

// PickMinute draws a minute according to the granularity policy.
func PickMinute(m Minutes, rnd RandomSource) int {
	if m == MinutesAny {
		return rnd.IntN(60)
	}
	i := rnd.IntN(roundChoices)
	if i == roundChoices-1 {
		return rnd.IntN(60)
	}
	return i * 5
}
