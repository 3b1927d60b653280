package reading

import (
	"strings"
	"testing"

	"github.com/erininge/Time-Game/internal/clock"
)

func TestNumToKanji(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "零"},
		{1, "一"},
		{9, "九"},
		{10, "十"},
		{11, "十一"},
		{19, "十九"},
		{20, "二十"},
		{25, "二十五"},
		{30, "三十"},
		{59, "五十九"},
	}

	for _, tt := range tests {
		if got := NumToKanji(tt.n); got != tt.want {
			t.Errorf("NumToKanji(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestNumToKanji_NeverWritesOneTen(t *testing.T) {
	for n := 0; n < 60; n++ {
		if s := NumToKanji(n); strings.Contains(s, "一十") {
			t.Errorf("NumToKanji(%d) = %q contains 一十", n, s)
		}
	}
}

func TestHourKana_Irregulars(t *testing.T) {
	if got := HourKana(4); len(got) != 1 || got[0] != "よじ" {
		t.Errorf("HourKana(4) = %v, want [よじ]", got)
	}
	if got := HourKana(9); len(got) != 1 || got[0] != "くじ" {
		t.Errorf("HourKana(9) = %v, want [くじ]", got)
	}
	got := HourKana(7)
	if len(got) != 2 || got[0] != "しちじ" || got[1] != "ななじ" {
		t.Errorf("HourKana(7) = %v, want [しちじ ななじ]", got)
	}
}

func TestHourKana_AllHours(t *testing.T) {
	for h := 1; h <= 12; h++ {
		readings := HourKana(h)
		if len(readings) == 0 {
			t.Errorf("HourKana(%d) is empty", h)
		}
		for _, r := range readings {
			if r == "よんじ" || r == "きゅうじ" {
				t.Errorf("HourKana(%d) contains %q", h, r)
			}
			if !strings.HasSuffix(r, "じ") {
				t.Errorf("HourKana(%d) = %q, want suffix じ", h, r)
			}
		}
	}
}

func TestHourKana_PanicsOnZero(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for hour 0")
		}
	}()
	HourKana(0)
}

func TestMinuteKana(t *testing.T) {
	tests := []struct {
		m    int
		want string
	}{
		{0, ""},
		{1, "いっぷん"},
		{3, "さんぷん"},
		{6, "ろっぷん"},
		{8, "はっぷん"},
		{10, "じゅっぷん"},
		{11, "じゅういっぷん"},
		{20, "にじゅっぷん"},
		{21, "にじゅういっぷん"},
		{24, "にじゅうよんぷん"},
		{30, "さんじゅっぷん"},
		{38, "さんじゅうはっぷん"},
		{45, "よんじゅうごふん"},
		{50, "ごじゅっぷん"},
		{59, "ごじゅうきゅうふん"},
	}

	for _, tt := range tests {
		if got := MinuteKana(tt.m); got != tt.want {
			t.Errorf("MinuteKana(%d) = %q, want %q", tt.m, got, tt.want)
		}
	}
}

func TestMinuteKana_AllMinutes(t *testing.T) {
	for m := 1; m < 60; m++ {
		got := MinuteKana(m)
		if !strings.HasSuffix(got, "ふん") && !strings.HasSuffix(got, "ぷん") {
			t.Errorf("MinuteKana(%d) = %q, want suffix ふん or ぷん", m, got)
		}
	}
}

func TestFor_Scenarios(t *testing.T) {
	tests := []struct {
		hour, minute int
		kanji        string
		kana         string
		arabic       string
	}{
		{7, 0, "午前七時", "ごぜんしちじ", "7時"},
		{15, 20, "午後三時二十分", "ごごさんじにじゅっぷん", "3時20分"},
		{9, 0, "午前九時", "ごぜんくじ", "9時"},
		{0, 5, "午前十二時五分", "ごぜんじゅうにじごふん", "12時5分"},
		{12, 1, "午後十二時一分", "ごごじゅうにじいっぷん", "12時1分"},
		{16, 59, "午後四時五十九分", "ごごよじごじゅうきゅうふん", "4時59分"},
	}

	for _, tt := range tests {
		r := For(clock.MustNew(tt.hour, tt.minute))
		if got := r.Kanji(); got != tt.kanji {
			t.Errorf("For(%02d:%02d).Kanji() = %q, want %q", tt.hour, tt.minute, got, tt.kanji)
		}
		if got := r.Kana(); got != tt.kana {
			t.Errorf("For(%02d:%02d).Kana() = %q, want %q", tt.hour, tt.minute, got, tt.kana)
		}
		if r.ArabicCore != tt.arabic {
			t.Errorf("For(%02d:%02d).ArabicCore = %q, want %q", tt.hour, tt.minute, r.ArabicCore, tt.arabic)
		}
	}
}

func TestFor_SevenHasAlternate(t *testing.T) {
	forms := For(clock.MustNew(19, 0)).KanaForms()
	if len(forms) != 2 || forms[0] != "ごごしちじ" || forms[1] != "ごごななじ" {
		t.Errorf("KanaForms() = %v, want [ごごしちじ ごごななじ]", forms)
	}
}

func TestFor_AllTimes(t *testing.T) {
	for h := 0; h < 24; h++ {
		for m := 0; m < 60; m++ {
			r := For(clock.MustNew(h, m))
			if len(r.KanaCores) == 0 {
				t.Fatalf("For(%02d:%02d) has no kana reading", h, m)
			}
			if m == 0 && strings.Contains(r.Kanji(), "分") {
				t.Errorf("For(%02d:00).Kanji() = %q has a minute suffix", h, r.Kanji())
			}
			if strings.Contains(r.Kanji(), "零") {
				t.Errorf("For(%02d:%02d).Kanji() = %q contains 零", h, m, r.Kanji())
			}
		}
	}
}
