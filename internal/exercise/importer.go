package exercise

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/abhisek/makhraj/internal/curriculum"
)

// ImportConfig describes where each field sits in an import sheet. Each
// row is one question; consecutive rows with the same title form one
// exercise.
type ImportConfig struct {
	FilePath         string
	SheetName        string // xlsx only; empty means the first sheet
	TitleColumn      string
	CategoryColumn   string
	DifficultyColumn string
	TypeColumn       string
	PromptColumn     string
	AudioColumn      string
	OptionsColumn    string // options separated by OptionSeparator
	CorrectColumn    string // 1-based index of the correct option
	OptionSeparator  string
	StartRow         int // 1-based; rows above are headers
}

// DefaultImportConfig returns the column layout produced by `exercises
// template`.
func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		TitleColumn:      "A",
		CategoryColumn:   "B",
		DifficultyColumn: "C",
		TypeColumn:       "D",
		PromptColumn:     "E",
		AudioColumn:      "F",
		OptionsColumn:    "G",
		CorrectColumn:    "H",
		OptionSeparator:  "|",
		StartRow:         2,
	}
}

// ImportResult reports what an import did.
type ImportResult struct {
	TotalProcessed int
	Created        int
	Skipped        int
	Errors         []string
}

// Import reads exercises from an .xlsx or .csv file and adds them to the
// catalogue. Row-level problems are collected in the result; only a file
// that cannot be read at all returns an error.
func Import(c *Catalogue, cfg ImportConfig) (*ImportResult, error) {
	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(cfg.FilePath)) {
	case ".csv":
		rows, err = readCSV(cfg.FilePath)
	case ".xlsx":
		rows, err = readXLSX(cfg.FilePath, cfg.SheetName)
	default:
		return nil, fmt.Errorf("unsupported import format %q", filepath.Ext(cfg.FilePath))
	}
	if err != nil {
		return nil, err
	}
	return importRows(c, cfg, rows)
}

func readXLSX(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New("workbook has no sheets")
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var rows [][]string
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

type columns struct {
	title, category, difficulty, kind, prompt, audio, options, correct int
}

func resolveColumns(cfg ImportConfig) (columns, error) {
	var cols columns
	for _, c := range []struct {
		name string
		dst  *int
	}{
		{cfg.TitleColumn, &cols.title},
		{cfg.CategoryColumn, &cols.category},
		{cfg.DifficultyColumn, &cols.difficulty},
		{cfg.TypeColumn, &cols.kind},
		{cfg.PromptColumn, &cols.prompt},
		{cfg.AudioColumn, &cols.audio},
		{cfg.OptionsColumn, &cols.options},
		{cfg.CorrectColumn, &cols.correct},
	} {
		n, err := excelize.ColumnNameToNumber(c.name)
		if err != nil {
			return cols, fmt.Errorf("column %q: %w", c.name, err)
		}
		*c.dst = n - 1
	}
	return cols, nil
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func importRows(c *Catalogue, cfg ImportConfig, rows [][]string) (*ImportResult, error) {
	cols, err := resolveColumns(cfg)
	if err != nil {
		return nil, err
	}
	sep := cfg.OptionSeparator
	if sep == "" {
		sep = "|"
	}

	res := &ImportResult{Errors: make([]string, 0)}
	var pending *Entry
	var pendingRow int

	flush := func() {
		if pending == nil {
			return
		}
		if _, err := c.Add(*pending); err != nil {
			res.Skipped++
			res.Errors = append(res.Errors, fmt.Sprintf("exercise at row %d: %v", pendingRow, err))
		} else {
			res.Created++
		}
		pending = nil
	}

	for i, row := range rows {
		rowNum := i + 1
		if rowNum < cfg.StartRow {
			continue
		}
		title := cell(row, cols.title)
		prompt := cell(row, cols.prompt)
		if title == "" && prompt == "" {
			continue
		}
		res.TotalProcessed++

		q, err := parseQuestionRow(row, cols, sep)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("row %d: %v", rowNum, err))
			continue
		}

		if pending == nil || (title != "" && title != pending.Title) {
			flush()
			pending = &Entry{
				Title:      title,
				Category:   cell(row, cols.category),
				Difficulty: curriculum.Difficulty(strings.ToLower(cell(row, cols.difficulty))),
				Type:       Kind(strings.ToLower(cell(row, cols.kind))),
			}
			pendingRow = rowNum
		}
		q.ID = fmt.Sprintf("q%d", len(pending.Questions)+1)
		pending.Questions = append(pending.Questions, q)
	}
	flush()
	return res, nil
}

func parseQuestionRow(row []string, cols columns, sep string) (AuthoredQuestion, error) {
	var opts []string
	for _, o := range strings.Split(cell(row, cols.options), sep) {
		if o = strings.TrimSpace(o); o != "" {
			opts = append(opts, o)
		}
	}
	correct, err := strconv.Atoi(cell(row, cols.correct))
	if err != nil {
		return AuthoredQuestion{}, fmt.Errorf("correct answer %q is not a number", cell(row, cols.correct))
	}
	q := AuthoredQuestion{
		Prompt:        cell(row, cols.prompt),
		Audio:         cell(row, cols.audio),
		Options:       opts,
		CorrectAnswer: correct - 1,
	}
	q.Randomized = q.Audio == ""
	if msg := checkChoices(q.Prompt, q.Options, q.CorrectAnswer); msg != "" {
		return AuthoredQuestion{}, errors.New(msg)
	}
	return q, nil
}

// WriteTemplate writes an empty import workbook with the default header
// row and one example row.
func WriteTemplate(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	header := []string{"title", "category", "difficulty", "type", "prompt", "audio", "options", "correct"}
	example := []string{"التمييز بين ت و ط", "similar-sounds", "beginner", "tone", "ما الحرف الذي سمعته؟", "تَ تَ تَ", "ت|ط", "1"}
	for i := range header {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, col+"1", header[i]); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
		if err := f.SetCellValue(sheet, col+"2", example[i]); err != nil {
			return fmt.Errorf("write example: %w", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save template: %w", err)
	}
	return nil
}
