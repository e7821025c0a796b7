package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/makhraj/internal/ui/theme"
)

// AccuracyBar draws correct/attempted as a bar with a tick at the mastery
// threshold. The fill turns green once accuracy reaches the threshold.
type AccuracyBar struct {
	Label     string
	Correct   int
	Attempted int
	Threshold int // percent; 0 hides the tick
	Width     int
}

// NewAccuracyBar creates a new accuracy bar.
func NewAccuracyBar(label string, correct, attempted, threshold, width int) AccuracyBar {
	return AccuracyBar{
		Label:     label,
		Correct:   correct,
		Attempted: attempted,
		Threshold: threshold,
		Width:     width,
	}
}

// Percent returns the rounded-down accuracy, 0 when nothing was attempted.
func (a AccuracyBar) Percent() int {
	if a.Attempted <= 0 {
		return 0
	}
	return min(a.Correct*100/a.Attempted, 100)
}

// View renders the bar.
func (a AccuracyBar) View() string {
	var result string
	if a.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(a.Label) + "  "
	}

	suffix := fmt.Sprintf("  %d/%d  %3d%%", a.Correct, a.Attempted, a.Percent())
	barWidth := max(a.Width-lipgloss.Width(result)-len(suffix), 4)

	filled := max(min(barWidth*a.Percent()/100, barWidth), 0)
	tick := -1
	if a.Threshold > 0 {
		tick = min(barWidth*a.Threshold/100, barWidth-1)
	}

	fill := theme.Accent
	if a.Attempted > 0 && a.Percent() >= a.Threshold {
		fill = theme.Success
	}
	filledStyle := lipgloss.NewStyle().Background(fill)
	emptyStyle := lipgloss.NewStyle().Background(theme.Border)

	var bar strings.Builder
	for i := range barWidth {
		cell := " "
		if i == tick {
			cell = "│"
		}
		if i < filled {
			bar.WriteString(filledStyle.Render(cell))
		} else {
			bar.WriteString(emptyStyle.Render(cell))
		}
	}

	return result + bar.String() + lipgloss.NewStyle().Foreground(theme.TextDim).Render(suffix)
}
