package history

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/makhraj/internal/curriculum"
	"github.com/abhisek/makhraj/internal/phoneme"
	"github.com/abhisek/makhraj/internal/router"
	"github.com/abhisek/makhraj/internal/screen"
	"github.com/abhisek/makhraj/internal/store"
	"github.com/abhisek/makhraj/internal/ui/layout"
	"github.com/abhisek/makhraj/internal/ui/theme"
)

// Limits on what the screen loads from the event log.
const (
	maxSessions = 50
	maxAnswers  = 500
)

// Source is the part of the trainer the history screen reads.
type Source interface {
	Sessions(n int) ([]store.SessionRecord, error)
	History(soundID string, n int) ([]store.AnswerEvent, error)
}

type historyLoadedMsg struct {
	Sessions []store.SessionRecord
	Answers  map[string][]store.AnswerEvent // sessionID → answers, oldest first
	Err      error
}

// HistoryScreen lists past practice runs. Enter expands a run to show its
// answers.
type HistoryScreen struct {
	src      Source
	sessions []store.SessionRecord
	answers  map[string][]store.AnswerEvent
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(src Source) *HistoryScreen {
	return &HistoryScreen{
		src:      src,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	// Loaded here rather than in a command: the trainer is not safe for
	// concurrent use.
	msg := s.load()
	return func() tea.Msg { return msg }
}

func (s *HistoryScreen) load() historyLoadedMsg {
	sessions, err := s.src.Sessions(maxSessions)
	if err != nil {
		return historyLoadedMsg{Err: err}
	}

	bySession := make(map[string][]store.AnswerEvent)
	answers, err := s.src.History("", maxAnswers)
	if err != nil {
		return historyLoadedMsg{Sessions: sessions, Answers: bySession}
	}
	for i := len(answers) - 1; i >= 0; i-- {
		a := answers[i]
		bySession[a.SessionID] = append(bySession[a.SessionID], a)
	}
	return historyLoadedMsg{Sessions: sessions, Answers: bySession}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
			s.answers = msg.Answers
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No practice yet. Pick a sound to start!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, sess := range s.sessions {
		dateStr := sess.Timestamp.Format("Jan 02, 2006 15:04")
		durationStr := fmt.Sprintf("%d:%02d", sess.DurationSecs/60, sess.DurationSecs%60)

		var accuracy int
		if sess.QuestionsServed > 0 {
			accuracy = sess.CorrectAnswers * 100 / sess.QuestionsServed
		}

		prefix := "  "
		if i == s.selected {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s  %s  %-10s %2d questions  %3d%%",
			prefix, dateStr, durationStr, runLabel(sess.SessionEventData), sess.QuestionsServed, accuracy)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(s.renderAnswers(sess.SessionID, width))
		}
	}

	return b.String()
}

func (s *HistoryScreen) renderAnswers(sessionID string, width int) string {
	answers := s.answers[sessionID]
	if len(answers) == 0 {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
				Render("    No answers recorded")) + "\n"
	}

	var b strings.Builder
	for _, a := range answers {
		mark := lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		detail := ""
		if !a.Correct {
			mark = lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
			if a.ConfusedWith != "" {
				detail = "  ↔ " + a.ConfusedWith
			} else if a.Selected != "" {
				detail = "  " + a.Selected
			}
		}
		line := fmt.Sprintf("    %s %s  %s%s", mark, letterOf(a.SoundID), curriculum.DisplayName(curriculum.Level(a.Level)), detail)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(line)))
		b.WriteString("\n")
	}
	return b.String()
}

// runLabel names what a run practised.
func runLabel(e store.SessionEventData) string {
	if e.SoundID == "" {
		return "-"
	}
	label := letterOf(e.SoundID)
	if e.Level != "" {
		label += " " + e.Level
	}
	return label
}

func letterOf(soundID string) string {
	if p, ok := phoneme.ByID(soundID); ok {
		return p.Letter
	}
	return soundID
}
