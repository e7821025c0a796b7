package app

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/makhraj/internal/router"
	"github.com/abhisek/makhraj/internal/screen"
	"github.com/abhisek/makhraj/internal/screens/home"
	"github.com/abhisek/makhraj/internal/screens/welcome"
	"github.com/abhisek/makhraj/internal/trainer"
	"github.com/abhisek/makhraj/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	Trainer *trainer.Trainer

	// SkipSplash starts on the home screen.
	SkipSplash bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	tr     *trainer.Trainer
	router *router.Router
	stats  layout.HeaderStats
	width  int
	height int
}

// newAppModel creates a new AppModel starting at the splash screen, or at
// home when the splash is skipped.
func newAppModel(opts Options) AppModel {
	homeFactory := func() screen.Screen { return home.New(opts.Trainer) }

	var first screen.Screen
	if opts.SkipSplash {
		first = homeFactory()
	} else {
		first = welcome.New(homeFactory)
	}

	m := AppModel{
		tr:     opts.Trainer,
		router: router.New(first),
	}
	m.refreshStats()
	return m
}

func (m *AppModel) refreshStats() {
	st := m.tr.Statistics()
	m.stats = layout.HeaderStats{
		MasteredSounds:  st.MasteredSounds,
		TrackedSounds:   st.TotalSounds,
		AverageAccuracy: st.AverageAccuracy,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

// escapeCaptured reports whether the active screen handles Esc itself.
func (m AppModel) escapeCaptured() bool {
	c, ok := m.router.Active().(screen.EscapeCapturer)
	return ok && c.CapturesEscape()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.escapeCaptured() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	switch msg.(type) {
	case tea.KeyMsg, router.PopScreenMsg, router.PopToRootMsg, router.ReplaceScreenMsg:
		m.refreshStats()
	}
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.stats, m.width)

	var footerHints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program and blocks until it exits or ctx is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	if opts.Trainer == nil {
		return fmt.Errorf("app: trainer is required")
	}
	p := tea.NewProgram(newAppModel(opts), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
