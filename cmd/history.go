package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/erininge/Time-Game/internal/quiz"
	"github.com/erininge/Time-Game/internal/store"
	"github.com/erininge/Time-Game/internal/ui/format"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past quiz sessions and accuracy per question kind",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		repo := st.EventRepo()
		sessions, err := repo.QuerySessionSummaries(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}
		stats, err := repo.AnswerStats(cmd.Context())
		if err != nil {
			return fmt.Errorf("query answer stats: %w", err)
		}

		printHistory(cmd.OutOrStdout(), sessions, stats)
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of sessions to list (0 = all)")
}

func printHistory(w io.Writer, sessions []store.SessionRecord, stats []store.KindStats) {
	if len(sessions) == 0 {
		fmt.Fprintln(w, "No sessions yet. Run `jikan` to start a quiz.")
		return
	}

	fmt.Fprintf(w, "%-18s  %8s  %7s  %8s\n", "Date", "Duration", "Score", "Accuracy")
	fmt.Fprintln(w, strings.Repeat("─", 48))
	for _, s := range sessions {
		pct := 0
		if s.QuestionsTotal > 0 {
			pct = s.CorrectAnswers * 100 / s.QuestionsTotal
		}
		line := fmt.Sprintf("%-18s  %8s  %3d/%-3d  %7d%%",
			format.Date(s.Timestamp), format.Duration(s.DurationSecs),
			s.CorrectAnswers, s.QuestionsTotal, pct)
		if s.QuestionsAnswered < s.QuestionsTotal {
			line += "  (ended early)"
		}
		fmt.Fprintln(w, line)
	}

	correct := lo.SumBy(sessions, func(s store.SessionRecord) int { return s.CorrectAnswers })
	total := lo.SumBy(sessions, func(s store.SessionRecord) int { return s.QuestionsTotal })
	fmt.Fprintf(w, "\n%d sessions, %d/%d correct\n", len(sessions), correct, total)

	if len(stats) == 0 {
		return
	}
	fmt.Fprintln(w)
	width := lo.Max(lo.Map(stats, func(k store.KindStats, _ int) int {
		return len([]rune(quiz.Kind(k.Kind).Label()))
	}))
	for _, k := range stats {
		label := quiz.Kind(k.Kind).Label()
		pad := strings.Repeat(" ", width-len([]rune(label)))
		fmt.Fprintf(w, "%s%s  %3d/%-3d  %3.0f%%\n", label, pad, k.Correct, k.Total, k.Accuracy()*100)
	}
}
