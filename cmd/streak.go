package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/erininge/Time-Game/internal/streak"
)

var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Show the current practice streak",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger, err := stderrLogger(cfg)
		if err != nil {
			return fmt.Errorf("init logging: %w", err)
		}
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		rec := streak.NewService(st.StreakRepo(), logger).Current(cmd.Context())

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(rec)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Streak: %d %s\n", rec.Streak, dayUnit(rec.Streak))
		if rec.LastActiveDay != nil {
			fmt.Fprintf(out, "Last practice: %s\n", *rec.LastActiveDay)
		}
		return nil
	},
}

func init() {
	streakCmd.Flags().Bool("json", false, "Print the record as JSON")
}
