package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/makhraj/internal/curriculum"
	"github.com/abhisek/makhraj/internal/mastery"
	"github.com/abhisek/makhraj/internal/recommend"
	"github.com/abhisek/makhraj/internal/session"
)

func testSummary() *session.SessionSummary {
	return &session.SessionSummary{
		Title:          "ب: CV",
		Duration:       3 * time.Minute,
		TotalQuestions: 5,
		TotalCorrect:   4,
		Accuracy:       80,
		Transitions: []mastery.StateTransition{
			{SoundID: "beh", Letter: "ب", Level: curriculum.CV, From: mastery.StatusInProgress, To: mastery.StatusMastered},
		},
		Patterns: []recommend.ErrorPattern{
			{Type: recommend.PatternConfusion, Description: "خلط بين ب و م", Frequency: 2, Recommendation: "تمرن على ب و م"},
		},
		Next: recommend.Suggestion{SoundID: "beh", Level: curriculum.VC, Reason: "أداء ممتاز", Priority: recommend.Low},
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary())
	if s.Title() != "Practice Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Practice Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testSummary())
	view := s.View(80, 24)
	for _, want := range []string{"Practice complete!", "Accuracy: 80%", "4/5", "خلط بين ب و م", "أداء ممتاز"} {
		if !strings.Contains(view, want) {
			t.Errorf("summary view lacks %q", want)
		}
	}
}

func TestSummaryScreen_EmptyRunHasNoSuggestion(t *testing.T) {
	s := New(&session.SessionSummary{Next: recommend.Suggestion{Reason: "ابدأ من البداية"}})
	if strings.Contains(s.View(80, 24), "ابدأ من البداية") {
		t.Error("empty run should not suggest a follow-up")
	}
	if New(nil).View(80, 24) != "" {
		t.Error("nil summary should render nothing")
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testSummary())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (pop)")
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New(testSummary())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testSummary())
	hints := s.KeyHints()
	if len(hints) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(hints))
	}
}
