package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/erininge/Time-Game/internal/quiz"
	"github.com/erininge/Time-Game/internal/session"
	"github.com/erininge/Time-Game/internal/streak"
	"github.com/erininge/Time-Game/internal/ui/format"
)

// quitCommand ends a line-mode drill early.
const quitCommand = ":q"

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Run a quiz in line mode on stdin",
	Long: `Ask questions one per line. Type the answer and press Enter.
An empty line skips the question and ` + quitCommand + ` ends the quiz early.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		settings, err := settingsFromFlags(cmd, cfg)
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

		gen, err := quiz.NewGenerator(settings, quiz.NewRandomSource())
		if err != nil {
			return err
		}
		runner, err := session.NewRunner(ctx, settings, gen, session.Deps{
			Events: st.EventRepo(),
			Streak: streak.NewService(st.StreakRepo(), logger),
			Log:    logger,
		})
		if err != nil {
			return err
		}
		return drill(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), runner)
	},
}

func init() {
	addSettingsFlags(askCmd)
}

// drill runs the session in r to completion, reading answers from in.
// End of input finishes the session like the quit command.
func drill(ctx context.Context, in io.Reader, out io.Writer, r *session.Runner) error {
	scanner := bufio.NewScanner(in)

	for r.Session().Phase == session.PhaseUnanswered {
		s := r.Session()
		q := s.Current
		fmt.Fprintf(out, "\n[%d/%d] %s\n", s.Index, s.Total, q.Meta)
		fmt.Fprintf(out, "  %s\n> ", q.Prompt)

		if !scanner.Scan() {
			fmt.Fprintln(out)
			if err := r.Finish(ctx); err != nil {
				return err
			}
			break
		}
		line := strings.TrimSpace(scanner.Text())

		var (
			fb  session.Feedback
			err error
		)
		switch line {
		case quitCommand:
			if err := r.Finish(ctx); err != nil {
				return err
			}
			continue
		case "":
			fb, err = r.Skip(ctx)
		default:
			fb, err = r.Submit(ctx, line)
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "%s  %s\n", format.Verdict(fb), format.Expected(q, fb))
		if err := r.Advance(ctx); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read answers: %w", err)
	}

	sum := r.Session().Summary()
	fmt.Fprintf(out, "\n%s\n", sum.String())
	if sum.Answered < sum.Total {
		fmt.Fprintf(out, "Ended early after %d of %d questions.\n", sum.Answered, sum.Total)
	}
	if rec := r.Streak(); rec != nil {
		fmt.Fprintf(out, "Streak: %d %s\n", rec.Streak, dayUnit(rec.Streak))
	}
	return nil
}

func dayUnit(n int) string {
	if n == 1 {
		return "day"
	}
	return "days"
}
