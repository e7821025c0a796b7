package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/makhraj/internal/curriculum"
	"github.com/abhisek/makhraj/internal/mastery"
	"github.com/abhisek/makhraj/internal/phoneme"
	"github.com/abhisek/makhraj/internal/recommend"
	"github.com/abhisek/makhraj/internal/router"
	"github.com/abhisek/makhraj/internal/screen"
	"github.com/abhisek/makhraj/internal/session"
	"github.com/abhisek/makhraj/internal/ui/components"
	"github.com/abhisek/makhraj/internal/ui/layout"
	"github.com/abhisek/makhraj/internal/ui/theme"
)

// SummaryScreen displays the end-of-practice summary.
type SummaryScreen struct {
	summary *session.SessionSummary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary *session.SessionSummary) *SummaryScreen {
	return &SummaryScreen{summary: summary}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Practice Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	center := func(style lipgloss.Style, text string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(text)) + "\n"
	}
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	text := lipgloss.NewStyle().Foreground(theme.Text)
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(min(width-8, 60), 0)))
	section := func(b *strings.Builder, title string) {
		b.WriteString("\n")
		b.WriteString(center(dim, title))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider) + "\n\n")
	}

	var b strings.Builder

	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true), "Practice complete!"))
	if sum.Title != "" {
		b.WriteString(center(text, sum.Title))
	}
	b.WriteString("\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(center(dim, fmt.Sprintf("Duration: %d:%02d", mins, secs)))
	b.WriteString("\n")

	accuracyStyle := text
	if sum.TotalQuestions > 0 && sum.Accuracy >= recommend.SuggestExcellentFrom {
		accuracyStyle = lipgloss.NewStyle().Foreground(theme.Success)
	}
	b.WriteString(center(accuracyStyle, fmt.Sprintf("Questions: %d        Correct: %d        Accuracy: %d%%",
		sum.TotalQuestions, sum.TotalCorrect, sum.Accuracy)))
	if sum.TotalQuestions > 0 {
		bar := components.NewAccuracyBar("", sum.TotalCorrect, sum.TotalQuestions, mastery.MasteryThreshold, min(width-8, 60))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()) + "\n")
	}

	if len(sum.Transitions) > 0 {
		section(&b, "Progress")
		for _, t := range sum.Transitions {
			line := fmt.Sprintf("%s  %s: %s → %s", t.Letter, curriculum.DisplayName(t.Level), t.From, t.To)
			b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Accent), line))
		}
	}

	if len(sum.Patterns) > 0 {
		section(&b, "Patterns")
		for _, p := range sum.Patterns {
			b.WriteString(center(text, fmt.Sprintf("%s (×%d)", p.Description, p.Frequency)))
			b.WriteString(center(dim, p.Recommendation))
		}
	}

	if sum.TotalQuestions > 0 {
		section(&b, "Next")
		b.WriteString(center(priorityStyle(sum.Next.Priority), suggestionLine(sum.Next)))
		b.WriteString(center(dim, sum.Next.Reason))
	}

	return b.String()
}

func suggestionLine(n recommend.Suggestion) string {
	letter := n.SoundID
	if p, ok := phoneme.Resolve(n.SoundID); ok {
		letter = p.Letter
	}
	line := fmt.Sprintf("%s  %s", letter, curriculum.DisplayName(n.Level))
	if n.Position != "" {
		line += "  " + curriculum.PositionName(n.Position)
	}
	return line
}

func priorityStyle(p recommend.SuggestionPriority) lipgloss.Style {
	switch p {
	case recommend.High:
		return lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	case recommend.Medium:
		return lipgloss.NewStyle().Foreground(theme.Accent)
	default:
		return lipgloss.NewStyle().Foreground(theme.Success)
	}
}
