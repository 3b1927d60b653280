package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/erininge/Time-Game/internal/app"
	"github.com/erininge/Time-Game/internal/config"
	"github.com/erininge/Time-Game/internal/logging"
	"github.com/erininge/Time-Game/internal/quiz"
	"github.com/erininge/Time-Game/internal/streak"
)

// runApp opens the store, builds dependencies, and launches the TUI.
// The logger writes to a file so it never draws over the screen.
func runApp(cmd *cobra.Command, cfg config.FileConfig, settings quiz.Settings) error {
	logger, closer, err := logging.New(cfg.Logging())
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer closer.Close()

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	logger.WithField("questions", settings.Questions).Info("starting jikan")

	return app.Run(app.Options{
		Settings: settings,
		Events:   st.EventRepo(),
		Streak:   streak.NewService(st.StreakRepo(), logger),
		Log:      logger,
	})
}
