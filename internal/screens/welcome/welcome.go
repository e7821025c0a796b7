package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/makhraj/internal/phoneme"
	"github.com/abhisek/makhraj/internal/router"
	"github.com/abhisek/makhraj/internal/screen"
	"github.com/abhisek/makhraj/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	pointStep    = 200 * time.Millisecond
	totalDur     = 3000 * time.Millisecond
)

const tagline = "Hear every makhraj, from throat to lips"

type tickMsg time.Time

// WelcomeScreen shows a splash that reveals the alphabet one articulation
// point at a time, throat first, before handing over to the home screen.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	rows         []string
	elapsed      time.Duration
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by homeFactory.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	var rows []string
	for _, p := range phoneme.AllArticulationPoints() {
		var letters []string
		for _, ph := range phoneme.ByArticulationPoint(p) {
			letters = append(letters, ph.Letter)
		}
		if len(letters) > 0 {
			rows = append(rows, strings.Join(letters, " "))
		}
	}
	return &WelcomeScreen{homeFactory: homeFactory, rows: rows}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed >= totalDur {
			return w, nil
		}
		w.elapsed += tickInterval
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}
	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	homeScreen := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

// revealed is the number of articulation rows visible so far.
func (w *WelcomeScreen) revealed() int {
	return min(int(w.elapsed/pointStep), len(w.rows))
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	shown := w.revealed()
	letterStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	newest := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	for i := range shown {
		style := letterStyle
		if i == shown-1 && shown < len(w.rows) {
			style = newest
		}
		sections = append(sections, style.Render(w.rows[i]))
	}

	if shown == len(w.rows) {
		sections = append(sections, "", RenderBanner(width), "")
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render(tagline))
		sections = append(sections, "", lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to continue"))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}
