package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/erininge/Time-Game/internal/answer"
	"github.com/erininge/Time-Game/internal/clock"
	"github.com/erininge/Time-Game/internal/reading"
)

var convertCmd = &cobra.Command{
	Use:   "convert H:MM",
	Short: "Print the Japanese and digital renderings of a time",
	Example: `  jikan convert 19:05
  jikan convert 4:30 --accept`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := clock.Parse(args[0])
		if err != nil {
			return err
		}
		accept, _ := cmd.Flags().GetBool("accept")
		lenient, _ := cmd.Flags().GetBool("cross-script-era")

		printConversion(cmd.OutOrStdout(), t)
		if accept {
			printAcceptSets(cmd.OutOrStdout(), t, answer.Options{CrossScriptEra: lenient})
		}
		return nil
	},
}

func init() {
	convertCmd.Flags().Bool("accept", false, "Also list every accepted normalized answer")
	convertCmd.Flags().Bool("cross-script-era", true, "Accept 午前/午後 and ごぜん/ごご in either script")
}

func printConversion(w io.Writer, t clock.Time) {
	d := clock.FormatDigital(t)
	r := reading.For(t)

	fmt.Fprintf(w, "%-6s %s\n", "24h", d.H24)
	fmt.Fprintf(w, "%-6s %s\n", "12h", d.H12)
	fmt.Fprintf(w, "%-6s %s\n", "kanji", r.Kanji())
	fmt.Fprintf(w, "%-6s %s\n", "kana", strings.Join(r.KanaForms(), " / "))
}

func printAcceptSets(w io.Writer, t clock.Time, opts answer.Options) {
	b := answer.NewBuilder(opts)
	r := reading.For(t)

	sets := []struct {
		name string
		set  answer.Set
	}{
		{"digital", b.Digital(clock.FormatDigital(t))},
		{"kanji", b.Japanese(r, answer.ScriptKanji)},
		{"kana", b.Japanese(r, answer.ScriptKana)},
	}
	for _, s := range sets {
		fmt.Fprintf(w, "\n%s (%d accepted)\n", s.name, s.set.Len())
		for _, m := range s.set.Members() {
			fmt.Fprintf(w, "  %s\n", m)
		}
	}
}
