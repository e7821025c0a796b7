package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/makhraj/internal/curriculum"
	"github.com/abhisek/makhraj/internal/mastery"
	sess "github.com/abhisek/makhraj/internal/session"
	"github.com/abhisek/makhraj/internal/ui/theme"
)

func centered(width int) lipgloss.Style {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
}

// renderQuestionView renders the active question display.
func (s *PracticeScreen) renderQuestionView(width int) string {
	state := s.state
	q := sess.CurrentQuestion(state)
	if q == nil {
		return centered(width).Foreground(theme.TextDim).Render("\n\n  Preparing question...")
	}

	var b strings.Builder

	mins := int(state.Elapsed.Minutes())
	secs := int(state.Elapsed.Seconds()) % 60

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s", curriculum.DisplayName(q.Level)))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d/%d  %s %d  %d:%02d",
			state.Index+1,
			len(state.Exercise.Questions),
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
			state.TotalCorrect,
			mins, secs,
		))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	if q.AudioDescription != "" {
		b.WriteString(centered(width).Foreground(theme.TextDim).Italic(true).Render(q.AudioDescription))
		b.WriteString("\n")
	}
	speaker := "♪ Press S to listen"
	if s.tr.SpeechBusy() {
		speaker = "♪ Playing..."
	}
	b.WriteString(centered(width).Foreground(theme.Accent).Render(speaker))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View()))

	if q.Hint != "" {
		b.WriteString("\n")
		b.WriteString(centered(width).Inherit(theme.Hint).Render(q.Hint))
	}
	return b.String()
}

// renderFeedback renders the verdict for the last answer.
func (s *PracticeScreen) renderFeedback(width int) string {
	res := s.outcome()
	if res == nil {
		return ""
	}
	q := sess.CurrentQuestion(s.state)

	var b strings.Builder
	b.WriteString("\n")

	if res.IsCorrect {
		b.WriteString(centered(width).Inherit(theme.Correct).Render(res.Feedback.Message))
	} else {
		b.WriteString(centered(width).Inherit(theme.Incorrect).Render(res.Feedback.Message))
		if q != nil {
			b.WriteString("\n")
			b.WriteString(centered(width).Foreground(theme.TextDim).
				Render(fmt.Sprintf("Correct answer: %s", q.Correct().Text)))
		}
	}
	b.WriteString("\n\n")

	textWidth := min(width-8, 70)
	block := func(text string, style lipgloss.Style) {
		if text == "" {
			return
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Width(textWidth).Render(text)))
		b.WriteString("\n\n")
	}
	block(res.Feedback.Explanation, lipgloss.NewStyle().Foreground(theme.Text))
	block(res.Feedback.Tip, lipgloss.NewStyle().Foreground(theme.Secondary))
	if len(res.Feedback.PracticeWords) > 0 {
		block("Practice: "+strings.Join(res.Feedback.PracticeWords, " · "), lipgloss.NewStyle().Foreground(theme.Accent))
	}
	if q != nil && res.IsCorrect {
		block(q.Explanation, lipgloss.NewStyle().Foreground(theme.TextDim))
	}

	for _, t := range s.state.LastOutcome.Transitions {
		if line := transitionLine(t); line != "" {
			b.WriteString(centered(width).Foreground(theme.Accent).Bold(true).Render(line))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(centered(width).Foreground(theme.TextDim).Render("Press Enter to continue..."))
	return b.String()
}

// transitionLine announces the level changes worth celebrating.
func transitionLine(t mastery.StateTransition) string {
	switch t.To {
	case mastery.StatusMastered:
		return fmt.Sprintf("%s mastered: %s", t.Letter, curriculum.DisplayName(t.Level))
	case mastery.StatusAvailable:
		if t.From == mastery.StatusLocked {
			return fmt.Sprintf("Unlocked: %s", curriculum.DisplayName(t.Level))
		}
	}
	return ""
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(centered(width).Foreground(theme.Text).Bold(true).Render("End practice early?"))
	b.WriteString("\n")
	b.WriteString(centered(width).Foreground(theme.TextDim).Render("Your answers so far are saved."))
	b.WriteString("\n\n")
	b.WriteString(centered(width).Foreground(theme.Success).Render("[Y] Yes, end practice"))
	b.WriteString("\n")
	b.WriteString(centered(width).Foreground(theme.Primary).Render("[N] No, keep going"))
	return b.String()
}

// renderLoading renders the loading state.
func renderLoading(width int) string {
	return centered(width).Foreground(theme.TextDim).Render("\n\n\n  Preparing your exercise...")
}

// renderError renders an error message.
func renderError(width int, errMsg string) string {
	return centered(width).Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}
