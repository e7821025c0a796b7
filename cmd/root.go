package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "makhraj",
	Short: "Arabic pronunciation trainer",
	Long: "Makhraj trains the ear to tell Arabic sounds apart, from isolated letters\n" +
		"through syllables and words up to whole sentences, tracking mastery per sound.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, false)
	},
}

func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("db", "", "Path to SQLite database file (overrides MAKHRAJ_DB env var)")
	pf.String("config", "", "Path to YAML config file (default $XDG_CONFIG_HOME/makhraj/config.yaml)")
	pf.String("env-file", ".env", "Path to a .env file with MAKHRAJ_* variables")
	pf.Uint64("seed", 0, "Random seed; 0 seeds from the clock")
	pf.Bool("unlock-all", false, "Make every curriculum level available")
	pf.String("log", "", "Log mode: off, dev, prod or file")
	pf.String("log-path", "", "Log file used when --log=file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(soundsCmd)
	rootCmd.AddCommand(judgeCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exercisesCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(versionCmd)
}
