package quiz

import "fmt"

// Orientation is the direction of a question.
type Orientation string

const (
	// JapaneseToDigital shows a Japanese reading; the learner types a clock time.
	JapaneseToDigital Orientation = "jp2digital"

	// DigitalToJapanese shows a clock time; the learner types Japanese.
	DigitalToJapanese Orientation = "digital2jp"

	OrientationMixed Orientation = "mixed"
)

// Script selects the script family of the Japanese side.
type Script string

const (
	ScriptKanji Script = "kanji"
	ScriptKana  Script = "kana"
	ScriptMixed Script = "mixed"
)

// DigitalStyle selects how digital prompts are shown.
type DigitalStyle string

const (
	Digital12h   DigitalStyle = "h12"
	Digital24h   DigitalStyle = "h24"
	DigitalMixed DigitalStyle = "mixed"
)

// Minutes selects the minute granularity policy.
type Minutes string

const (
	// MinutesRound favours multiples of five with an occasional arbitrary minute.
	MinutesRound Minutes = "round"

	// MinutesAny draws every minute uniformly.
	MinutesAny Minutes = "any"
)

// ScriptCheck controls whether Japanese answers must match the prompted
// script family.
type ScriptCheck string

const (
	// ScriptCheckStrict accepts only answers in the requested script.
	ScriptCheckStrict ScriptCheck = "strict"

	// ScriptCheckMerged accepts kanji and kana answers alike.
	ScriptCheckMerged ScriptCheck = "merged"
)

// Settings configures a quiz session.
type Settings struct {
	Orientation Orientation
	Questions   int
	Script      Script
	Digital     DigitalStyle
	Minutes     Minutes

	// ScriptCheck applies to Digital→Japanese questions.
	ScriptCheck ScriptCheck

	// CrossScriptEra lets a kanji answer carry a kana era marker and
	// the reverse.
	CrossScriptEra bool
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		Orientation:    OrientationMixed,
		Questions:      10,
		Script:         ScriptMixed,
		Digital:        DigitalMixed,
		Minutes:        MinutesRound,
		ScriptCheck:    ScriptCheckStrict,
		CrossScriptEra: true,
	}
}

// SettingsError describes an invalid settings field.
type SettingsError struct {
	Field  string
	Value  any
	Reason string
}

func (e *SettingsError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// Validate reports the first invalid field, or nil.
func (s Settings) Validate() error {
	if s.Questions < 1 {
		return &SettingsError{Field: "questions", Value: s.Questions, Reason: "must be a positive integer"}
	}
	switch s.Orientation {
	case JapaneseToDigital, DigitalToJapanese, OrientationMixed:
	default:
		return &SettingsError{Field: "orientation", Value: s.Orientation, Reason: "must be jp2digital, digital2jp or mixed"}
	}
	switch s.Script {
	case ScriptKanji, ScriptKana, ScriptMixed:
	default:
		return &SettingsError{Field: "script", Value: s.Script, Reason: "must be kanji, kana or mixed"}
	}
	switch s.Digital {
	case Digital12h, Digital24h, DigitalMixed:
	default:
		return &SettingsError{Field: "digital", Value: s.Digital, Reason: "must be h12, h24 or mixed"}
	}
	switch s.Minutes {
	case MinutesRound, MinutesAny:
	default:
		return &SettingsError{Field: "minutes", Value: s.Minutes, Reason: "must be round or any"}
	}
	switch s.ScriptCheck {
	case ScriptCheckStrict, ScriptCheckMerged:
	default:
		return &SettingsError{Field: "script_check", Value: s.ScriptCheck, Reason: "must be strict or merged"}
	}
	return nil
}
