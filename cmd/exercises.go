package cmd

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/makhraj/internal/exercise"
)

var exercisesCmd = &cobra.Command{
	Use:   "exercises",
	Short: "Manage the authored exercise catalogue",
}

var exercisesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalogue exercises (optionally filtered by category)",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		c := e.tr.Catalogue()
		var entries []exercise.Entry
		if category != "" {
			entries = c.ByCategory(category)
			if len(entries) == 0 {
				return fmt.Errorf("no exercises found for category %q", category)
			}
		} else {
			entries = c.All()
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-24s  %-16s  %-12s  %-8s  %3s  %s\n",
			"ID", "Category", "Difficulty", "Type", "Qs", "Title")
		fmt.Fprintln(out, strings.Repeat("─", 100))
		for _, en := range entries {
			fmt.Fprintf(out, "%-24s  %-16s  %-12s  %-8s  %3d  %s\n",
				en.ID, en.Category, en.Difficulty, en.Type, len(en.Questions), en.Title)
		}
		fmt.Fprintf(out, "\n%d exercises\n", len(entries))
		return nil
	},
}

var exercisesAddCmd = &cobra.Command{
	Use:   "add <file.yaml>",
	Short: "Add an exercise described in a YAML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read exercise: %w", err)
		}
		var entry exercise.Entry
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&entry); err != nil {
			return fmt.Errorf("parse %s: %w", args[0], err)
		}

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		added, err := e.tr.Catalogue().Add(entry)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%d questions)\n", added.ID, len(added.Questions))
		return nil
	},
}

var exercisesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a catalogue exercise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		if err := e.tr.Catalogue().Delete(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
		return nil
	},
}

var exercisesResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the built-in catalogue",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		e.tr.Catalogue().Reset()
		fmt.Fprintf(cmd.OutOrStdout(), "Catalogue reset to %d built-in exercises\n", len(exercise.DefaultEntries()))
		return nil
	},
}

var exercisesTemplateCmd = &cobra.Command{
	Use:   "template <file.xlsx>",
	Short: "Write an import workbook with the expected columns",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := exercise.WriteTemplate(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Template written to %s\n", args[0])
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file.xlsx|file.csv>",
	Short: "Import exercises from a spreadsheet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sheet, _ := cmd.Flags().GetString("sheet")
		sep, _ := cmd.Flags().GetString("separator")
		startRow, _ := cmd.Flags().GetInt("start-row")

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		cfg := exercise.DefaultImportConfig()
		cfg.FilePath = args[0]
		cfg.SheetName = sheet
		cfg.OptionSeparator = sep
		cfg.StartRow = startRow

		res, err := exercise.Import(e.tr.Catalogue(), cfg)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Processed %d rows: %d exercises created, %d skipped\n",
			res.TotalProcessed, res.Created, res.Skipped)
		for _, msg := range res.Errors {
			fmt.Fprintf(out, "  %s\n", msg)
		}
		return nil
	},
}

func init() {
	exercisesListCmd.Flags().String("category", "", "Filter by category (e.g. similar-sounds)")

	importCmd.Flags().String("sheet", "", "Worksheet name (xlsx only; default first sheet)")
	importCmd.Flags().String("separator", "|", "Separator between options in the options column")
	importCmd.Flags().Int("start-row", 2, "First data row (1-based)")

	exercisesCmd.AddCommand(exercisesListCmd)
	exercisesCmd.AddCommand(exercisesAddCmd)
	exercisesCmd.AddCommand(exercisesDeleteCmd)
	exercisesCmd.AddCommand(exercisesResetCmd)
	exercisesCmd.AddCommand(exercisesTemplateCmd)
}
