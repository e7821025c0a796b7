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
	"github.com/abhisek/makhraj/internal/screens/practice"
	"github.com/abhisek/makhraj/internal/session"
	"github.com/abhisek/makhraj/internal/trainer"
	"github.com/abhisek/makhraj/internal/ui/components"
	"github.com/abhisek/makhraj/internal/ui/layout"
	"github.com/abhisek/makhraj/internal/ui/theme"
)

// SoundDetailScreen shows one sound's articulation notes and per-level
// progress. Enter starts practice on the selected level.
type SoundDetailScreen struct {
	tr     *trainer.Trainer
	sound  phoneme.Phoneme
	levels []curriculum.Level
	cursor int
	notice string
}

var _ screen.Screen = (*SoundDetailScreen)(nil)
var _ screen.KeyHintProvider = (*SoundDetailScreen)(nil)

func newSoundDetail(tr *trainer.Trainer, sound phoneme.Phoneme) *SoundDetailScreen {
	d := &SoundDetailScreen{tr: tr, sound: sound, levels: curriculum.Order()}
	if sp, ok := tr.Progress(sound.ID); ok {
		if i := curriculum.Index(sp.CurrentLevel); i >= 0 {
			d.cursor = i
		}
	}
	return d
}

func (d *SoundDetailScreen) Init() tea.Cmd { return nil }
func (d *SoundDetailScreen) Title() string { return d.sound.Letter + "  " + d.sound.Name }

func (d *SoundDetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}
	d.notice = ""
	switch kmsg.String() {
	case "up", "k":
		if d.cursor > 0 {
			d.cursor--
		}
	case "down", "j":
		if d.cursor < len(d.levels)-1 {
			d.cursor++
		}
	case "s":
		d.tr.Speak(d.sound.Letter)
	case "enter":
		level := d.levels[d.cursor]
		if d.tr.SoundMasteryStatus(d.sound.ID, level) == mastery.StatusLocked {
			d.notice = "Master the previous level to unlock this one."
			return d, nil
		}
		scr := practice.ForSlot(d.tr, session.PlanSlot{SoundID: d.sound.ID, Letter: d.sound.Letter, Level: level})
		return d, func() tea.Msg { return router.PushScreenMsg{Screen: scr} }
	}
	return d, nil
}

func (d *SoundDetailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Level"},
		{Key: "Enter", Description: "Practice"},
		{Key: "S", Description: "Listen"},
		{Key: "Esc", Description: "Back"},
	}
}

func (d *SoundDetailScreen) View(width, height int) string {
	p := d.sound
	contentWidth := min(width-8, 70)

	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	valStyle := lipgloss.NewStyle().Foreground(theme.Text)
	heading := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)

	var b strings.Builder

	b.WriteString("  " + theme.Letter.Render(p.Letter) + "  " +
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(p.Name))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  " + phoneme.ArticulationPointName(p.ArticulationPoint)))
	b.WriteString("\n\n")

	if p.ArticulationDescription != "" {
		b.WriteString(valStyle.Width(contentWidth).PaddingLeft(2).Render(p.ArticulationDescription))
		b.WriteString("\n")
	}
	if p.TrainingTip != "" {
		b.WriteString(dimStyle.Width(contentWidth).PaddingLeft(2).Italic(true).Render(p.TrainingTip))
		b.WriteString("\n")
	}
	if len(p.SimilarSounds) > 0 {
		b.WriteString(dimStyle.Render("  Similar:  ") + valStyle.Render(strings.Join(p.SimilarSounds, " ")))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(heading.Render("  Levels"))
	b.WriteString("\n")

	sp, _ := d.tr.Progress(p.ID)
	for i, l := range d.levels {
		st := d.tr.SoundMasteryStatus(p.ID, l)
		stats := ""
		if sp != nil {
			if lp, ok := sp.Levels[l]; ok && lp.QuestionsAttempted > 0 {
				stats = fmt.Sprintf("%d/%d  %d%%", lp.QuestionsCorrect, lp.QuestionsAttempted, lp.Accuracy)
			}
		}
		cursor := "  "
		if i == d.cursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("  %s%s %-2d %-24s %-8s %s",
			cursor, mastery.StatusIcon(st), i+1, curriculum.DisplayName(l), mastery.StatusDisplayName(st), stats)
		style := statusStyle(st)
		if i == d.cursor {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	if sp != nil {
		if lp, ok := sp.Levels[d.levels[d.cursor]]; ok && lp.QuestionsAttempted > 0 {
			bar := components.NewAccuracyBar("  "+curriculum.DisplayName(d.levels[d.cursor]),
				lp.QuestionsCorrect, lp.QuestionsAttempted, mastery.MasteryThreshold, min(contentWidth, 60))
			b.WriteString("\n" + bar.View() + "\n")
		}
	}

	if sp != nil && (len(sp.StrongPositions) > 0 || len(sp.WeakPositions) > 0) {
		b.WriteString("\n")
		b.WriteString(heading.Render("  Word positions"))
		b.WriteString("\n")
		if len(sp.StrongPositions) > 0 {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Render("  + " + positionNames(sp.StrongPositions)))
			b.WriteString("\n")
		}
		if len(sp.WeakPositions) > 0 {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render("  - " + positionNames(sp.WeakPositions)))
			b.WriteString("\n")
		}
	}

	if d.notice != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render("  " + d.notice))
	}

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, "\n"+b.String())
}

func positionNames(ps []curriculum.Position) string {
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = curriculum.PositionName(p)
	}
	return strings.Join(names, "، ")
}
