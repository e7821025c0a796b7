package catalogue

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/makhraj/internal/exercise"
	"github.com/abhisek/makhraj/internal/router"
	"github.com/abhisek/makhraj/internal/screen"
	"github.com/abhisek/makhraj/internal/screens/practice"
	"github.com/abhisek/makhraj/internal/trainer"
	"github.com/abhisek/makhraj/internal/ui/layout"
	"github.com/abhisek/makhraj/internal/ui/theme"
)

type row struct {
	category string
	entry    *exercise.Entry // nil for a category header
}

// CatalogueScreen lists the authored exercises by category.
type CatalogueScreen struct {
	tr           *trainer.Trainer
	rows         []row
	cursor       int
	scrollOffset int
}

var _ screen.Screen = (*CatalogueScreen)(nil)
var _ screen.KeyHintProvider = (*CatalogueScreen)(nil)

// New creates a new CatalogueScreen.
func New(tr *trainer.Trainer) *CatalogueScreen {
	s := &CatalogueScreen{tr: tr}
	cat := tr.Catalogue()
	for _, c := range cat.Categories() {
		s.rows = append(s.rows, row{category: c})
		entries := cat.ByCategory(c)
		for i := range entries {
			s.rows = append(s.rows, row{category: c, entry: &entries[i]})
		}
	}
	s.move(1)
	return s
}

func (s *CatalogueScreen) Init() tea.Cmd { return nil }

func (s *CatalogueScreen) Title() string { return "Exercises" }

func (s *CatalogueScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

// move steps the cursor to the next entry row in direction delta. From a
// header row it lands on the first entry below it.
func (s *CatalogueScreen) move(delta int) {
	next := s.cursor
	if s.cursor >= len(s.rows) || s.rows[s.cursor].entry != nil {
		next += delta
	}
	for next >= 0 && next < len(s.rows) {
		if s.rows[next].entry != nil {
			s.cursor = next
			return
		}
		next += delta
	}
}

func (s *CatalogueScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "up", "k":
		s.move(-1)
	case "down", "j":
		s.move(1)
	case "enter":
		if s.cursor < len(s.rows) && s.rows[s.cursor].entry != nil {
			scr := practice.ForCatalogue(s.tr, s.rows[s.cursor].entry.ID)
			return s, func() tea.Msg { return router.PushScreenMsg{Screen: scr} }
		}
	}
	return s, nil
}

func (s *CatalogueScreen) View(width, height int) string {
	if len(s.rows) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  The catalogue is empty.")
	}

	if s.cursor < s.scrollOffset {
		s.scrollOffset = s.cursor
		if s.scrollOffset > 0 && s.rows[s.scrollOffset-1].entry == nil {
			s.scrollOffset--
		}
	}
	if height > 0 && s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}

	var lines []string
	for i := s.scrollOffset; i < len(s.rows) && len(lines) < max(height, 1); i++ {
		r := s.rows[i]
		if r.entry == nil {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.Secondary).Bold(true).PaddingLeft(2).
				Render(r.category))
			continue
		}
		cursor := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.cursor {
			cursor = "▸ "
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		meta := fmt.Sprintf("%s · %d", r.entry.Difficulty, len(r.entry.Questions))
		lines = append(lines, "  "+cursor+style.Render(r.entry.Title)+"  "+
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(meta))
	}
	return strings.Join(lines, "\n")
}
