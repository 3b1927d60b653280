// Package reading renders clock times as spoken and written Japanese.
package reading

import (
	"fmt"

	"github.com/erininge/Time-Game/internal/clock"
)

// Reading is the Japanese rendering of a clock.Time in both script
// families.
type Reading struct {
	Time clock.Time

	// EraKanji is 午前 or 午後; EraKana is ごぜん or ごご.
	EraKanji string
	EraKana  string

	// KanjiCore is the time without era marker, e.g. 九時五分.
	KanjiCore string

	// ArabicCore is KanjiCore written with unpadded arabic digits, e.g. 9時5分.
	ArabicCore string

	// KanaCores holds every kana reading without era marker, primary
	// pronunciation first.
	KanaCores []string
}

// HourKana returns the readings of a 12-hour clock value (1-12), primary
// first. It panics for values outside that range.
func HourKana(hour12 int) []string {
	r, ok := hourKana[hour12]
	if !ok {
		panic(fmt.Sprintf("reading: hour %d out of range", hour12))
	}
	return r
}

// MinuteKana returns the reading of minute m (0-59). Minute 0 has an
// empty reading.
func MinuteKana(m int) string {
	if m == 0 {
		return ""
	}
	if r, ok := minuteKana[m]; ok {
		return r
	}
	return tensKana[m/10] + minuteKana[m%10]
}

// For builds the reading of t.
func For(t clock.Time) Reading {
	h, m := t.Hour12(), t.Minute()

	r := Reading{
		Time:       t,
		EraKanji:   eraKanjiPM,
		EraKana:    eraKanaPM,
		KanjiCore:  NumToKanji(h) + "時",
		ArabicCore: fmt.Sprintf("%d時", h),
	}
	if t.IsAM() {
		r.EraKanji = eraKanjiAM
		r.EraKana = eraKanaAM
	}
	if m != 0 {
		r.KanjiCore += NumToKanji(m) + "分"
		r.ArabicCore += fmt.Sprintf("%d分", m)
	}

	minute := MinuteKana(m)
	for _, hr := range HourKana(h) {
		r.KanaCores = append(r.KanaCores, hr+minute)
	}
	return r
}

// Kanji returns the canonical kanji form, e.g. 午前九時五分.
func (r Reading) Kanji() string {
	return r.EraKanji + r.KanjiCore
}

// Kana returns the canonical kana form: the primary pronunciation with
// its era marker.
func (r Reading) Kana() string {
	return r.EraKana + r.KanaCores[0]
}

// KanaForms returns every full kana form, primary first.
func (r Reading) KanaForms() []string {
	out := make([]string, len(r.KanaCores))
	for i, c := range r.KanaCores {
		out[i] = r.EraKana + c
	}
	return out
}
