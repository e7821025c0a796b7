package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/makhraj/internal/phoneme"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset learner progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		sound, _ := cmd.Flags().GetString("sound")
		yes, _ := cmd.Flags().GetBool("yes")

		var letter string
		if sound != "" {
			p, ok := phoneme.Resolve(sound)
			if !ok {
				return fmt.Errorf("unknown sound %q", sound)
			}
			sound, letter = p.ID, p.Letter
		}
		if !yes {
			return fmt.Errorf("this deletes progress; re-run with --yes to confirm")
		}

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		out := cmd.OutOrStdout()
		if sound != "" {
			e.tr.ResetSoundProgress(sound)
			fmt.Fprintf(out, "Progress for %s reset.\n", letter)
			return nil
		}
		e.tr.ResetAllProgress()
		fmt.Fprintln(out, "All progress reset.")
		return nil
	},
}

func init() {
	resetCmd.Flags().String("sound", "", "Reset only this sound (ID or letter)")
	resetCmd.Flags().Bool("yes", false, "Confirm the reset")
}
