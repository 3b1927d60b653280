package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/erininge/Time-Game/internal/config"
	"github.com/erininge/Time-Game/internal/logging"
	"github.com/erininge/Time-Game/internal/quiz"
	"github.com/erininge/Time-Game/internal/store"
)

var rootCmd = &cobra.Command{
	Use:          "jikan",
	Short:        "Japanese clock-time drills",
	Long:         "Jikan: terminal quiz for reading and writing clock times in Japanese (時間の読み方).",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		settings, err := cfg.Settings()
		if err != nil {
			return err
		}
		return runApp(cmd, cfg, settings)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides JIKAN_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to TOML config file (default $XDG_CONFIG_HOME/jikan/config.toml)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(streakCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then JIKAN_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// loadConfig reads the file named by --config, or the default path.
func loadConfig(cmd *cobra.Command) (config.FileConfig, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultConfigPath()
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return config.FileConfig{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// openStore resolves the database path and opens the store.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// Settings flags shared by play and ask. Unset flags keep the config value.
func addSettingsFlags(cmd *cobra.Command) {
	cmd.Flags().String("orientation", "", "Question direction: mixed, digital2jp or jp2digital")
	cmd.Flags().Int("questions", 0, "Number of questions in the session")
	cmd.Flags().String("script", "", "Japanese script: mixed, kanji or kana")
	cmd.Flags().String("digital", "", "Digital clock style: mixed, h12 or h24")
	cmd.Flags().String("minutes", "", "Minute selection: round or any")
	cmd.Flags().String("script-check", "", "Script check for Japanese answers: strict or merged")
	cmd.Flags().Bool("cross-script-era", true, "Accept 午前/午後 and ごぜん/ごご in either script")
}

func settingsFromFlags(cmd *cobra.Command, cfg config.FileConfig) (quiz.Settings, error) {
	q := cfg.Quiz
	flags := cmd.Flags()
	for name, dst := range map[string]**string{
		"orientation":  &q.Orientation,
		"script":       &q.Script,
		"digital":      &q.Digital,
		"minutes":      &q.Minutes,
		"script-check": &q.ScriptCheck,
	} {
		if flags.Changed(name) {
			v, _ := flags.GetString(name)
			*dst = &v
		}
	}
	if flags.Changed("questions") {
		n, _ := flags.GetInt("questions")
		q.Questions = &n
	}
	if flags.Changed("cross-script-era") {
		b, _ := flags.GetBool("cross-script-era")
		q.CrossScriptEra = &b
	}

	cfg.Quiz = q
	return cfg.Settings()
}

// stderrLogger builds a logger for line-mode commands, honoring the
// configured level and format.
func stderrLogger(cfg config.FileConfig) (*logrus.Logger, error) {
	l := cfg.Logging()
	l.File = ""
	logger, _, err := logging.New(l)
	return logger, err
}
