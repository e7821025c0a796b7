package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/makhraj/internal/mastery"
	"github.com/abhisek/makhraj/internal/ui/theme"
)

const titleFull = ` ╔╦╗╔═╗╦╔═╦ ╦╦═╗╔═╗ ╦
 ║║║╠═╣╠╩╗╠═╣╠╦╝╠═╣ ║
 ╩ ╩╩ ╩╩ ╩╩ ╩╩╚═╩ ╩╚╝`

const titleCompact = "M · A · K · H · R · A · J"

// contentWidth returns the uniform inner width used for all sections.
func contentWidth(frameWidth int) int {
	// Leave room for frame border (2) + inner padding (4)
	w := frameWidth - 6
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	return w
}

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	art := titleFull
	if compact {
		art = titleCompact
	}
	block := style.Render(art) + "\n" + theme.Letter.Render("مَخْرَج")
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderStatsBar renders the learner figures in a bordered box matching
// content width.
func renderStatsBar(st mastery.Statistics, cw int, compact bool) string {
	masteredStyle := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	progressStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	accuracyStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			masteredStyle.Render(fmt.Sprintf("●%d", st.MasteredSounds)),
			progressStyle.Render(fmt.Sprintf("◐%d", st.InProgressSounds)),
			accuracyStyle.Render(fmt.Sprintf("◎%d%%", st.AverageAccuracy)),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			masteredStyle.Render(fmt.Sprintf("● %d MASTERED", st.MasteredSounds)),
			progressStyle.Render(fmt.Sprintf("◐ %d LEARNING", st.InProgressSounds)),
			accuracyStyle.Render(fmt.Sprintf("◎ %d%% ACCURACY", st.AverageAccuracy)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// renderFocus lists the sounds that need the most work, or nothing when
// none fall below the focus cutoff.
func renderFocus(st mastery.Statistics, cw int) string {
	if len(st.CurrentFocus) == 0 {
		return ""
	}
	parts := make([]string, len(st.CurrentFocus))
	for i, f := range st.CurrentFocus {
		parts[i] = fmt.Sprintf("%s %d%%", f.Letter, f.Accuracy)
	}
	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Width(cw).
		Align(lipgloss.Center).
		Render("Focus: " + strings.Join(parts, "  "))
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderMenu renders each menu item as a fixed-width button.
func renderMenu(items []string, selected int, cw int) string {
	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Primary).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(0, 1)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	var buttons []string
	for i, label := range items {
		if i == selected {
			buttons = append(buttons, selectedBtn.Render("▸ "+label))
		} else {
			buttons = append(buttons, normalBtn.Render(label))
		}
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderMenuCompact renders menu items as plain lines for small terminals
// where bordered buttons would overflow.
func renderMenuCompact(items []string, selected int, cw int) string {
	var lines []string
	for i, label := range items {
		if i == selected {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Primary).
				Bold(true).
				Render(" ▸ "+label+" "))
		} else {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   "+label))
		}
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

// renderFrame wraps content in a double-border frame centered within the
// given dimensions.
func renderFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).   // account for border chars
		Height(height - 2). // account for border chars
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
