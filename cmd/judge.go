package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/makhraj/internal/curriculum"
	"github.com/abhisek/makhraj/internal/judge"
	"github.com/abhisek/makhraj/internal/phoneme"
	"github.com/abhisek/makhraj/internal/trainer"
)

type judgeOutput struct {
	Correct       bool     `json:"correct"`
	Target        string   `json:"target"`
	Selected      string   `json:"selected,omitempty"`
	ConfusedWith  string   `json:"confusedWith,omitempty"`
	ConfusionType string   `json:"confusionType,omitempty"`
	Similarity    float64  `json:"similarity"`
	NextAction    string   `json:"nextAction"`
	Message       string   `json:"message"`
	Explanation   string   `json:"explanation,omitempty"`
	Tip           string   `json:"tip,omitempty"`
	PracticeWords []string `json:"practiceWords,omitempty"`
}

var judgeCmd = &cobra.Command{
	Use:   "judge",
	Short: "Judge one multiple-choice answer and explain the verdict",
	Example: `  makhraj judge --target ت --options "ت,ط,د" --correct 1 --selected 2
  makhraj judge --target beh --level real_words --position medial --options "كتاب,كتان" --correct 1 --selected 2 --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		target, _ := flags.GetString("target")
		options, _ := flags.GetStringSlice("options")
		selected, _ := flags.GetInt("selected")
		correct, _ := flags.GetInt("correct")
		level, _ := flags.GetString("level")
		position, _ := flags.GetString("position")
		asJSON, _ := flags.GetBool("json")

		p, ok := phoneme.Resolve(target)
		if !ok {
			return fmt.Errorf("unknown sound %q", target)
		}
		if !curriculum.Valid(curriculum.Level(level)) {
			return fmt.Errorf("unknown level %q", level)
		}
		if position != "" && !curriculum.ValidPosition(curriculum.Position(position)) {
			return fmt.Errorf("unknown position %q", position)
		}
		if len(options) < 2 {
			return fmt.Errorf("need at least two options, got %d", len(options))
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		tr := trainer.New(cmd.Context(), trainer.Options{Seed: cfg.Seed})

		res := tr.Judge(judge.Input{
			TargetSound: p.Letter,
			Selected:    selected - 1,
			Correct:     correct - 1,
			Options:     judge.TextOptions(options...),
			Level:       curriculum.Level(level),
			Position:    curriculum.Position(position),
		})

		o := judgeOutput{
			Correct:       res.IsCorrect,
			Target:        res.TargetSound,
			Selected:      res.SelectedSound,
			ConfusedWith:  res.ConfusedWith,
			ConfusionType: string(res.ConfusionType),
			Similarity:    res.SimilarityScore,
			NextAction:    string(res.NextAction),
			Message:       res.Feedback.Message,
			Explanation:   res.Feedback.Explanation,
			Tip:           res.Feedback.Tip,
			PracticeWords: res.Feedback.PracticeWords,
		}

		out := cmd.OutOrStdout()
		if asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(o)
		}

		verdict := "✗ wrong"
		if o.Correct {
			verdict = "✓ correct"
		}
		fmt.Fprintf(out, "%s  %s\n", verdict, o.Message)
		if o.ConfusedWith != "" {
			fmt.Fprintf(out, "Confused %s with %s (%s, similarity %.2f)\n",
				o.Target, o.ConfusedWith, o.ConfusionType, o.Similarity)
		}
		if o.Explanation != "" {
			fmt.Fprintln(out, o.Explanation)
		}
		if o.Tip != "" {
			fmt.Fprintf(out, "Tip: %s\n", o.Tip)
		}
		if len(o.PracticeWords) > 0 {
			fmt.Fprintf(out, "Practice: %s\n", strings.Join(o.PracticeWords, "، "))
		}
		fmt.Fprintf(out, "Next: %s\n", o.NextAction)
		return nil
	},
}

func init() {
	f := judgeCmd.Flags()
	f.String("target", "", "Target sound (ID or letter)")
	f.StringSlice("options", nil, "Comma-separated answer options")
	f.Int("selected", 1, "1-based index of the chosen option")
	f.Int("correct", 1, "1-based index of the correct option")
	f.String("level", string(curriculum.Isolation), "Curriculum level")
	f.String("position", "", "Word position (initial, medial, final)")
	f.Bool("json", false, "Print the verdict as JSON")
	_ = judgeCmd.MarkFlagRequired("target")
	_ = judgeCmd.MarkFlagRequired("options")
}
