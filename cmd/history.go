package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/makhraj/internal/curriculum"
	"github.com/abhisek/makhraj/internal/phoneme"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent practice runs, or recent answers for one sound",
	RunE: func(cmd *cobra.Command, args []string) error {
		sound, _ := cmd.Flags().GetString("sound")
		limit, _ := cmd.Flags().GetInt("limit")

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		out := cmd.OutOrStdout()
		if sound != "" {
			p, ok := phoneme.Resolve(sound)
			if !ok {
				return fmt.Errorf("unknown sound %q", sound)
			}
			answers, err := e.tr.History(p.ID, limit)
			if err != nil {
				return fmt.Errorf("load history: %w", err)
			}
			if len(answers) == 0 {
				fmt.Fprintf(out, "No answers recorded for %s yet.\n", p.Letter)
				return nil
			}
			for _, a := range answers {
				mark := "✓"
				if !a.Correct {
					mark = "✗"
				}
				line := fmt.Sprintf("%s  %s  %-20s", a.Timestamp.Local().Format(time.DateTime), mark,
					curriculum.DisplayName(curriculum.Level(a.Level)))
				if a.ConfusedWith != "" {
					line += "  ↔ " + a.ConfusedWith
				}
				fmt.Fprintln(out, line)
			}
			return nil
		}

		sessions, err := e.tr.Sessions(limit)
		if err != nil {
			return fmt.Errorf("load sessions: %w", err)
		}
		if len(sessions) == 0 {
			fmt.Fprintln(out, "No practice runs yet.")
			return nil
		}
		for _, s := range sessions {
			acc := 0
			if s.QuestionsServed > 0 {
				acc = s.CorrectAnswers * 100 / s.QuestionsServed
			}
			fmt.Fprintf(out, "%s  %-8s %-20s %2d/%-2d  %3d%%  %s\n",
				s.Timestamp.Local().Format(time.DateTime), s.SoundID,
				curriculum.DisplayName(curriculum.Level(s.Level)),
				s.CorrectAnswers, s.QuestionsServed, acc,
				(time.Duration(s.DurationSecs) * time.Second).String())
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().String("sound", "", "Show answers for one sound (ID or letter)")
	historyCmd.Flags().Int("limit", 20, "Maximum number of entries")
}
