package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/makhraj/internal/mastery"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		st := e.tr.Statistics()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Sounds practised:  %d\n", st.TotalSounds)
		fmt.Fprintf(out, "Mastered:          %d\n", st.MasteredSounds)
		fmt.Fprintf(out, "In progress:       %d\n", st.InProgressSounds)
		fmt.Fprintf(out, "Average accuracy:  %d%%\n", st.AverageAccuracy)
		fmt.Fprintf(out, "Strongest:         %s\n", accuracyList(st.StrongestSounds))
		fmt.Fprintf(out, "Weakest:           %s\n", accuracyList(st.WeakestSounds))
		fmt.Fprintf(out, "Current focus:     %s\n", accuracyList(st.CurrentFocus))

		pairs := make([]string, len(st.MostConfusedPairs))
		for i, p := range st.MostConfusedPairs {
			pairs[i] = fmt.Sprintf("%s/%s ×%d", p.Pair[0], p.Pair[1], p.Count)
		}
		fmt.Fprintf(out, "Most confused:     %s\n", orDash(strings.Join(pairs, "  ")))
		return nil
	},
}

func accuracyList(list []mastery.SoundAccuracy) string {
	parts := make([]string, len(list))
	for i, s := range list {
		parts[i] = fmt.Sprintf("%s %d%%", s.Letter, s.Accuracy)
	}
	return orDash(strings.Join(parts, "  "))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
