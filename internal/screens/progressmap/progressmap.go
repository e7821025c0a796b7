package progressmap

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/makhraj/internal/curriculum"
	"github.com/abhisek/makhraj/internal/mastery"
	"github.com/abhisek/makhraj/internal/phoneme"
	"github.com/abhisek/makhraj/internal/router"
	"github.com/abhisek/makhraj/internal/screen"
	"github.com/abhisek/makhraj/internal/trainer"
	"github.com/abhisek/makhraj/internal/ui/layout"
	"github.com/abhisek/makhraj/internal/ui/theme"
)

type rowKind int

const (
	rowPointHeader rowKind = iota
	rowSound
)

type row struct {
	kind  rowKind
	point phoneme.ArticulationPoint
	sound *phoneme.Phoneme
}

// ProgressMapScreen lists every sound grouped by articulation point with
// the status of each of its levels.
type ProgressMapScreen struct {
	tr           *trainer.Trainer
	rows         []row
	cursor       int
	scrollOffset int
}

var _ screen.Screen = (*ProgressMapScreen)(nil)
var _ screen.KeyHintProvider = (*ProgressMapScreen)(nil)

// New creates a new ProgressMapScreen.
func New(tr *trainer.Trainer) *ProgressMapScreen {
	var rows []row
	for _, point := range phoneme.AllArticulationPoints() {
		sounds := phoneme.ByArticulationPoint(point)
		if len(sounds) == 0 {
			continue
		}
		rows = append(rows, row{kind: rowPointHeader, point: point})
		for i := range sounds {
			rows = append(rows, row{kind: rowSound, point: point, sound: &sounds[i]})
		}
	}

	s := &ProgressMapScreen{tr: tr, rows: rows}

	// Set cursor to first sound row
	for i, r := range s.rows {
		if r.kind == rowSound {
			s.cursor = i
			break
		}
	}
	return s
}

func (s *ProgressMapScreen) Init() tea.Cmd {
	return nil
}

func (s *ProgressMapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			s.moveCursor(-1)
		case "down", "j":
			s.moveCursor(1)
		case "tab":
			s.nextPoint()
		case "enter":
			return s, s.selectSound()
		case "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *ProgressMapScreen) View(width, height int) string {
	if len(s.rows) == 0 {
		return ""
	}

	s.adjustScroll(height)

	var lines []string
	visible := 0
	for i, r := range s.rows {
		if i < s.scrollOffset {
			continue
		}
		if visible >= height {
			break
		}
		switch r.kind {
		case rowPointHeader:
			lines = append(lines, renderPointHeader(r.point, width))
		case rowSound:
			lines = append(lines, s.renderSoundRow(r, i == s.cursor))
		}
		visible++
	}
	return strings.Join(lines, "\n")
}

func (s *ProgressMapScreen) Title() string {
	return "Progress Map"
}

// KeyHints returns the key binding hints for the footer.
func (s *ProgressMapScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Tab", Description: "Makhraj"},
		{Key: "Enter", Description: "Levels"},
		{Key: "Esc", Description: "Back"},
	}
}

// moveCursor moves the cursor by delta, skipping headers.
func (s *ProgressMapScreen) moveCursor(delta int) {
	next := s.cursor + delta
	for next >= 0 && next < len(s.rows) {
		if s.rows[next].kind == rowSound {
			s.cursor = next
			return
		}
		next += delta
	}
}

// nextPoint jumps to the first sound of the next articulation point,
// wrapping around at the end.
func (s *ProgressMapScreen) nextPoint() {
	current := s.rows[s.cursor].point
	for i := s.cursor + 1; i < len(s.rows); i++ {
		if s.rows[i].kind == rowSound && s.rows[i].point != current {
			s.cursor = i
			return
		}
	}
	s.cursor = 0
	s.moveCursor(1)
}

// adjustScroll keeps the cursor and its header inside the viewport.
func (s *ProgressMapScreen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	headerRow := s.cursor
	for headerRow > 0 && s.rows[headerRow-1].kind == rowPointHeader {
		headerRow--
	}
	if headerRow < s.scrollOffset {
		s.scrollOffset = headerRow
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
}

func (s *ProgressMapScreen) selectSound() tea.Cmd {
	r := s.rows[s.cursor]
	if r.kind != rowSound || r.sound == nil {
		return nil
	}
	detail := newSoundDetail(s.tr, *r.sound)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: detail}
	}
}

func renderPointHeader(p phoneme.ArticulationPoint, width int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Width(width).
		Padding(1, 0, 0, 2).
		Render(phoneme.ArticulationPointName(p))
}

// statusStyle returns the progress-map style for a level status.
func statusStyle(st mastery.Status) lipgloss.Style {
	switch st {
	case mastery.StatusMastered:
		return theme.Mastered
	case mastery.StatusInProgress:
		return theme.InProgress
	case mastery.StatusAvailable:
		return theme.Available
	default:
		return theme.Locked
	}
}

// levelStrip renders one status glyph per level, easiest first.
func levelStrip(tr *trainer.Trainer, soundID string) string {
	var b strings.Builder
	for _, l := range curriculum.Order() {
		st := tr.SoundMasteryStatus(soundID, l)
		glyph := mastery.StatusIcon(st)
		if st == mastery.StatusLocked {
			glyph = "·"
		}
		b.WriteString(statusStyle(st).Render(glyph))
		b.WriteString(" ")
	}
	return b.String()
}

func (s *ProgressMapScreen) renderSoundRow(r row, selected bool) string {
	p := r.sound
	accuracy := "   -"
	if sp, ok := s.tr.Progress(p.ID); ok && sp.Attempted() > 0 {
		accuracy = fmt.Sprintf("%3d%%", sp.OverallAccuracy)
	}

	cursor := "  "
	nameStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if selected {
		cursor = "▸ "
		nameStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}

	return fmt.Sprintf("  %s%s  %s  %s %s",
		cursor,
		theme.Letter.Render(p.Letter),
		nameStyle.Render(fmt.Sprintf("%-8s", p.Name)),
		levelStrip(s.tr, p.ID),
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(accuracy),
	)
}
