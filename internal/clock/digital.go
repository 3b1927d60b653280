package clock

import "fmt"

// Digital holds the two digital-clock renderings of a Time.
type Digital struct {
	// H24 is the zero-padded 24-hour form, e.g. "15:20".
	H24 string

	// H12 is the 12-hour form with an unpadded hour, e.g. "3:20 PM".
	H12 string

	hour12   int
	minute   int
	meridiem string
}

// FormatDigital renders t as 24-hour and 12-hour strings.
func FormatDigital(t Time) Digital {
	meridiem := "PM"
	if t.IsAM() {
		meridiem = "AM"
	}
	return Digital{
		H24:      t.String(),
		H12:      fmt.Sprintf("%d:%02d %s", t.Hour12(), t.Minute(), meridiem),
		hour12:   t.Hour12(),
		minute:   t.Minute(),
		meridiem: meridiem,
	}
}

// Variants returns every surface form a learner may type for this time:
// the 24-hour string and the 12-hour string with the AM/PM marker in
// upper case, lower case and dotted ("a.m."), each with and without the
// separating space. The strings are not normalized.
func (d Digital) Variants() []string {
	base := fmt.Sprintf("%d:%02d", d.hour12, d.minute)
	dotted := "a.m."
	lower := "am"
	if d.meridiem == "PM" {
		dotted = "p.m."
		lower = "pm"
	}

	out := []string{d.H24}
	for _, marker := range []string{d.meridiem, lower, dotted} {
		out = append(out, base+" "+marker, base+marker)
	}
	return out
}
