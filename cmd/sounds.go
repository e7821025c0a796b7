package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/makhraj/internal/phoneme"
)

var soundsCmd = &cobra.Command{
	Use:   "sounds",
	Short: "Browse the Arabic sound table",
}

var soundsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all sounds (optionally filtered by articulation point)",
	RunE: func(cmd *cobra.Command, args []string) error {
		point, _ := cmd.Flags().GetString("point")

		sounds := phoneme.All()
		if point != "" {
			sounds = phoneme.ByArticulationPoint(phoneme.ArticulationPoint(point))
			if len(sounds) == 0 {
				return fmt.Errorf("no sounds found for articulation point %q", point)
			}
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-8s  %-6s  %-10s  %-18s  %s\n",
			"ID", "Letter", "Name", "Point", "Similar")
		fmt.Fprintln(out, strings.Repeat("─", 70))

		for _, p := range sounds {
			fmt.Fprintf(out, "%-8s  %-6s  %-10s  %-18s  %s\n",
				p.ID, p.Letter, p.Name, p.ArticulationPoint,
				strings.Join(p.SimilarSounds, " "))
		}

		fmt.Fprintf(out, "\n%d sounds\n", len(sounds))
		return nil
	},
}

var soundsShowCmd = &cobra.Command{
	Use:   "show <sound>",
	Short: "Show one sound by ID or letter",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, ok := phoneme.Resolve(args[0])
		if !ok {
			return fmt.Errorf("unknown sound %q", args[0])
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s  %s (%s)\n", p.Letter, p.Name, p.ID)
		fmt.Fprintf(out, "Makhraj:    %s\n", phoneme.ArticulationPointName(p.ArticulationPoint))
		fmt.Fprintf(out, "            %s\n", p.ArticulationDescription)
		chars := make([]string, len(p.Characteristics))
		for i, c := range p.Characteristics {
			chars[i] = string(c)
		}
		fmt.Fprintf(out, "Features:   %s\n", strings.Join(chars, ", "))
		fmt.Fprintf(out, "Similar:    %s\n", strings.Join(p.SimilarSounds, " "))
		fmt.Fprintf(out, "Tip:        %s\n", p.TrainingTip)
		return nil
	},
}

func init() {
	soundsListCmd.Flags().String("point", "", "Filter by articulation point (e.g. lips, throat_deep)")

	soundsCmd.AddCommand(soundsListCmd)
	soundsCmd.AddCommand(soundsShowCmd)
}
