package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/makhraj/internal/screens/plan"
	"github.com/abhisek/makhraj/internal/session"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show today's practice plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		slots, _ := cmd.Flags().GetInt("slots")

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		p := session.BuildPlan(e.tr.AllProgress(), slots)
		out := cmd.OutOrStdout()
		for i, slot := range p.Slots {
			fmt.Fprintf(out, "%d. %s\n", i+1, plan.SlotLabel(slot))
			if slot.Reason != "" {
				fmt.Fprintf(out, "   %s\n", slot.Reason)
			}
		}
		return nil
	},
}

func init() {
	planCmd.Flags().Int("slots", session.DefaultTotalSlots, "Number of exercises in the plan")
}
