package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/makhraj/internal/mastery"
	"github.com/abhisek/makhraj/internal/router"
	"github.com/abhisek/makhraj/internal/screen"
	"github.com/abhisek/makhraj/internal/screens/catalogue"
	"github.com/abhisek/makhraj/internal/screens/history"
	"github.com/abhisek/makhraj/internal/screens/plan"
	"github.com/abhisek/makhraj/internal/screens/progressmap"
	"github.com/abhisek/makhraj/internal/trainer"
	"github.com/abhisek/makhraj/internal/ui/components"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	tr         *trainer.Trainer
	menu       components.Menu
	menuLabels []string
	stats      mastery.Statistics
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.Refresher = (*HomeScreen)(nil)

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
}

// New creates a new HomeScreen.
func New(tr *trainer.Trainer) *HomeScreen {
	menuLabels := []string{"PRACTICE", "PROGRESS MAP", "EXERCISES", "HISTORY", "QUIT"}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd { return push(plan.New(tr)) }},
		{Label: menuLabels[1], Action: func() tea.Cmd { return push(progressmap.New(tr)) }},
		{Label: menuLabels[2], Action: func() tea.Cmd { return push(catalogue.New(tr)) }},
		{Label: menuLabels[3], Action: func() tea.Cmd { return push(history.New(tr)) }},
		{Label: menuLabels[4], Action: func() tea.Cmd { return tea.Quit }},
	}

	return &HomeScreen{
		tr:         tr,
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
		stats:      tr.Statistics(),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

// Refresh reloads the statistics after a practice run.
func (h *HomeScreen) Refresh() tea.Cmd {
	h.stats = h.tr.Statistics()
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	cw := contentWidth(width)

	sections := []string{
		renderTitle(cw, compact),
		renderStatsBar(h.stats, cw, compact),
	}
	if focus := renderFocus(h.stats, cw); focus != "" && !compact {
		sections = append(sections, focus)
	}
	if compact {
		sections = append(sections, renderMenuCompact(h.menuLabels, h.menu.Selected, cw))
	} else {
		sections = append(sections, renderMenu(h.menuLabels, h.menu.Selected, cw))
	}

	return renderFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
