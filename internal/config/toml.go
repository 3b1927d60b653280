package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/erininge/Time-Game/internal/quiz"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Quiz QuizConfig `toml:"quiz"`
	Log  LogConfig  `toml:"log"`
}

// QuizConfig maps quiz settings. Nil fields keep their defaults.
type QuizConfig struct {
	Orientation    *string `toml:"orientation"`
	Questions      *int    `toml:"questions"`
	Script         *string `toml:"script"`
	Digital        *string `toml:"digital"`
	Minutes        *string `toml:"minutes"`
	ScriptCheck    *string `toml:"script_check"`
	CrossScriptEra *bool   `toml:"cross_script_era"`
}

// LogConfig maps logging settings.
type LogConfig struct {
	Level  *string `toml:"level"`
	File   *string `toml:"file"`
	Format *string `toml:"format"`
}

// Log is the resolved logging configuration.
type Log struct {
	Level  string
	File   string
	Format string
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}

// Apply overlays the set fields onto s.
func (q QuizConfig) Apply(s quiz.Settings) quiz.Settings {
	if q.Orientation != nil {
		s.Orientation = quiz.Orientation(*q.Orientation)
	}
	if q.Questions != nil {
		s.Questions = *q.Questions
	}
	if q.Script != nil {
		s.Script = quiz.Script(*q.Script)
	}
	if q.Digital != nil {
		s.Digital = quiz.DigitalStyle(*q.Digital)
	}
	if q.Minutes != nil {
		s.Minutes = quiz.Minutes(*q.Minutes)
	}
	if q.ScriptCheck != nil {
		s.ScriptCheck = quiz.ScriptCheck(*q.ScriptCheck)
	}
	if q.CrossScriptEra != nil {
		s.CrossScriptEra = *q.CrossScriptEra
	}
	return s
}

// Settings returns the default quiz settings overlaid with the file's
// values, validated.
func (c FileConfig) Settings() (quiz.Settings, error) {
	s := c.Quiz.Apply(quiz.DefaultSettings())
	if err := s.Validate(); err != nil {
		return quiz.Settings{}, fmt.Errorf("config [quiz]: %w", err)
	}
	return s, nil
}

// Logging resolves the log section against the defaults: level "info",
// text format, file DefaultLogPath.
func (c FileConfig) Logging() Log {
	l := Log{Level: "info", File: DefaultLogPath(), Format: "text"}
	if c.Log.Level != nil {
		l.Level = *c.Log.Level
	}
	if c.Log.File != nil {
		l.File = *c.Log.File
	}
	if c.Log.Format != nil {
		l.Format = *c.Log.Format
	}
	return l
}
