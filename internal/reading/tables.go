package reading

// hourKana maps a 12-hour clock value to its readings. The first entry is
// the primary pronunciation. 4 is よじ and 9 is くじ; 7 also has the
// alternate ななじ.
var hourKana = map[int][]string{
	1:  {"いちじ"},
	2:  {"にじ"},
	3:  {"さんじ"},
	4:  {"よじ"},
	5:  {"ごじ"},
	6:  {"ろくじ"},
	7:  {"しちじ", "ななじ"},
	8:  {"はちじ"},
	9:  {"くじ"},
	10: {"じゅうじ"},
	11: {"じゅういちじ"},
	12: {"じゅうにじ"},
}

// minuteKana lists every minute whose reading cannot be composed from a
// tens prefix and a ones reading: the single digits, the teens and the
// round tens.
var minuteKana = map[int]string{
	1:  "いっぷん",
	2:  "にふん",
	3:  "さんぷん",
	4:  "よんぷん",
	5:  "ごふん",
	6:  "ろっぷん",
	7:  "ななふん",
	8:  "はっぷん",
	9:  "きゅうふん",
	10: "じゅっぷん",
	11: "じゅういっぷん",
	12: "じゅうにふん",
	13: "じゅうさんぷん",
	14: "じゅうよんぷん",
	15: "じゅうごふん",
	16: "じゅうろっぷん",
	17: "じゅうななふん",
	18: "じゅうはっぷん",
	19: "じゅうきゅうふん",
	20: "にじゅっぷん",
	30: "さんじゅっぷん",
	40: "よんじゅっぷん",
	50: "ごじゅっぷん",
}

// tensKana is the prefix for 21-29, 31-39, 41-49 and 51-59.
var tensKana = map[int]string{
	2: "にじゅう",
	3: "さんじゅう",
	4: "よんじゅう",
	5: "ごじゅう",
}

const (
	eraKanjiAM = "午前"
	eraKanjiPM = "午後"
	eraKanaAM  = "ごぜん"
	eraKanaPM  = "ごご"
)
