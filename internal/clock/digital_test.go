package clock

import "testing"

func TestFormatDigital(t *testing.T) {
	tests := []struct {
		hour, minute int
		h24, h12     string
	}{
		{7, 0, "07:00", "7:00 AM"},
		{15, 20, "15:20", "3:20 PM"},
		{0, 5, "00:05", "12:05 AM"},
		{12, 0, "12:00", "12:00 PM"},
		{23, 59, "23:59", "11:59 PM"},
	}

	for _, tt := range tests {
		d := FormatDigital(MustNew(tt.hour, tt.minute))
		if d.H24 != tt.h24 {
			t.Errorf("H24 = %q, want %q", d.H24, tt.h24)
		}
		if d.H12 != tt.h12 {
			t.Errorf("H12 = %q, want %q", d.H12, tt.h12)
		}
	}
}

func TestDigitalVariants(t *testing.T) {
	d := FormatDigital(MustNew(21, 5))
	want := map[string]bool{
		"21:05":     true,
		"9:05 PM":   true,
		"9:05PM":    true,
		"9:05 pm":   true,
		"9:05pm":    true,
		"9:05 p.m.": true,
		"9:05p.m.":  true,
	}

	got := d.Variants()
	if len(got) != len(want) {
		t.Fatalf("Variants() has %d entries, want %d: %v", len(got), len(want), got)
	}
	for _, v := range got {
		if !want[v] {
			t.Errorf("unexpected variant %q", v)
		}
	}
}

func TestDigitalVariants_MorningUsesAM(t *testing.T) {
	for _, v := range FormatDigital(MustNew(9, 5)).Variants() {
		if v == "9:05 p.m." || v == "9:05 PM" {
			t.Errorf("morning time produced afternoon variant %q", v)
		}
	}
}
