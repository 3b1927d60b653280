package cmd

import (
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a quiz with settings from flags",
	Long: `Start the TUI with the home screen pre-filled from flags.
Flags override the [quiz] section of the config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		settings, err := settingsFromFlags(cmd, cfg)
		if err != nil {
			return err
		}
		return runApp(cmd, cfg, settings)
	},
}

func init() {
	addSettingsFlags(playCmd)
}
