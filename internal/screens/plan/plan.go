package plan

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/makhraj/internal/curriculum"
	"github.com/abhisek/makhraj/internal/router"
	"github.com/abhisek/makhraj/internal/screen"
	"github.com/abhisek/makhraj/internal/screens/practice"
	"github.com/abhisek/makhraj/internal/session"
	"github.com/abhisek/makhraj/internal/trainer"
	"github.com/abhisek/makhraj/internal/ui/components"
	"github.com/abhisek/makhraj/internal/ui/layout"
	"github.com/abhisek/makhraj/internal/ui/theme"
)

// PlanScreen shows today's practice plan. Each slot opens a practice run;
// the plan is rebuilt whenever the screen comes back into view.
type PlanScreen struct {
	tr   *trainer.Trainer
	plan *session.Plan
	menu components.Menu
}

var _ screen.Screen = (*PlanScreen)(nil)
var _ screen.KeyHintProvider = (*PlanScreen)(nil)
var _ screen.Refresher = (*PlanScreen)(nil)

// New creates a new PlanScreen.
func New(tr *trainer.Trainer) *PlanScreen {
	s := &PlanScreen{tr: tr}
	s.rebuild()
	return s
}

func (s *PlanScreen) rebuild() {
	s.plan = session.BuildPlan(s.tr.AllProgress(), session.DefaultTotalSlots)
	items := make([]components.MenuItem, len(s.plan.Slots))
	for i, slot := range s.plan.Slots {
		items[i] = components.MenuItem{
			Label: SlotLabel(slot),
			Action: func() tea.Cmd {
				scr := practice.ForSlot(s.tr, slot)
				return func() tea.Msg { return router.PushScreenMsg{Screen: scr} }
			},
		}
	}
	s.menu = components.NewMenu(items)
}

// SlotLabel is the one-line description of a plan slot.
func SlotLabel(slot session.PlanSlot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-9s %s  %s", slot.Category, slot.Letter, curriculum.DisplayName(slot.Level))
	if slot.Position != "" {
		b.WriteString("  " + curriculum.PositionName(slot.Position))
	}
	if slot.Partner != "" {
		b.WriteString("  ↔ " + slot.Partner)
	}
	return b.String()
}

func (s *PlanScreen) Init() tea.Cmd {
	return nil
}

func (s *PlanScreen) Refresh() tea.Cmd {
	selected := s.menu.Selected
	s.rebuild()
	if selected < len(s.menu.Items) {
		s.menu.Selected = selected
	}
	return nil
}

func (s *PlanScreen) Title() string {
	return "Practice Plan"
}

func (s *PlanScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Practice"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *PlanScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *PlanScreen) View(width, height int) string {
	if len(s.plan.Slots) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Nothing to practise right now.")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(s.menu.View())
	b.WriteString("\n")

	if i := s.menu.Selected; i >= 0 && i < len(s.plan.Slots) && s.plan.Slots[i].Reason != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(min(width-8, 70)).
			PaddingLeft(4).
			Inherit(theme.Hint).
			Render(s.plan.Slots[i].Reason))
	}
	return b.String()
}
