package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/makhraj/internal/curriculum"
	"github.com/abhisek/makhraj/internal/phoneme"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend [sound]",
	Short: "Suggest what to practise next",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		soundID := ""
		if len(args) == 1 {
			p, ok := phoneme.Resolve(args[0])
			if !ok {
				return fmt.Errorf("unknown sound %q", args[0])
			}
			soundID = p.ID
		}

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		out := cmd.OutOrStdout()
		if soundID != "" {
			level, pos := e.tr.NextExercise(soundID)
			next := curriculum.DisplayName(level)
			if pos != "" {
				next += " (" + curriculum.PositionName(pos) + ")"
			}
			fmt.Fprintf(out, "Next exercise: %s\n\n", next)
		}

		recs := e.tr.Recommendations(soundID)
		if len(recs) == 0 {
			fmt.Fprintln(out, "Nothing to recommend yet. Start practising!")
			return nil
		}
		for _, r := range recs {
			fmt.Fprintf(out, "[%d] %-22s %s\n", r.Priority, r.Type, r.Message)
			if r.Reason != "" {
				fmt.Fprintf(out, "    %s\n", r.Reason)
			}
		}
		return nil
	},
}
