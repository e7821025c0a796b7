package app

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/makhraj/internal/router"
	"github.com/abhisek/makhraj/internal/screen"
	"github.com/abhisek/makhraj/internal/trainer"
)

type captureScreen struct{ capture bool }

func (s *captureScreen) Init() tea.Cmd                          { return nil }
func (s *captureScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *captureScreen) View(int, int) string                   { return "" }
func (s *captureScreen) Title() string                          { return "Capture" }
func (s *captureScreen) CapturesEscape() bool                   { return s.capture }

func newTestModel(t *testing.T) AppModel {
	t.Helper()
	tr := trainer.New(context.Background(), trainer.Options{Seed: 1})
	return newAppModel(Options{Trainer: tr, SkipSplash: true})
}

func TestEscPopsUnlessCaptured(t *testing.T) {
	m := newTestModel(t)
	m.router.Push(&captureScreen{capture: true})

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		if _, ok := cmd().(router.PopScreenMsg); ok {
			t.Fatal("esc should reach a capturing screen instead of popping")
		}
	}

	m.router.Push(&captureScreen{capture: false})
	_, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("esc on a non-capturing screen should pop")
	}
}

func TestEscAtRootDoesNothing(t *testing.T) {
	m := newTestModel(t)
	if _, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape}); cmd != nil {
		t.Error("esc at the root screen should be a no-op")
	}
}

func TestHeaderStats(t *testing.T) {
	m := newTestModel(t)
	if m.stats.TrackedSounds != 0 || m.stats.MasteredSounds != 0 {
		t.Errorf("stats = %+v for a new learner, want zero", m.stats)
	}
}

func TestViewBeforeResizeIsEmpty(t *testing.T) {
	m := newTestModel(t)
	m.View()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(AppModel)
	if m.width != 120 || m.height != 40 {
		t.Errorf("size = %dx%d, want 120x40", m.width, m.height)
	}
	m.View()
}

func TestRunRequiresTrainer(t *testing.T) {
	if err := Run(context.Background(), Options{}); err == nil {
		t.Error("expected an error without a trainer")
	}
}
