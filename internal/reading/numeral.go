package reading

var kanjiDigits = [10]string{"零", "一", "二", "三", "四", "五", "六", "七", "八", "九"}

// NumToKanji renders n (0-59) with Japanese kanji numerals: 0 is 零,
// 10 is 十, 11 is 十一, 20 is 二十 and 59 is 五十九. The tens digit 1 is
// never written.
func NumToKanji(n int) string {
	if n < 10 {
		return kanjiDigits[n]
	}
	tens, ones := n/10, n%10

	s := "十"
	if tens > 1 {
		s = kanjiDigits[tens] + s
	}
	if ones > 0 {
		s += kanjiDigits[ones]
	}
	return s
}
