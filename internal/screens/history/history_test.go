package history

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/makhraj/internal/store"
)

type fakeSource struct {
	sessions []store.SessionRecord
	answers  []store.AnswerEvent
	err      error
}

func (f *fakeSource) Sessions(int) ([]store.SessionRecord, error) { return f.sessions, f.err }
func (f *fakeSource) History(string, int) ([]store.AnswerEvent, error) {
	return f.answers, nil
}

func loaded(t *testing.T, src Source) *HistoryScreen {
	t.Helper()
	s := New(src)
	cmd := s.Init()
	if cmd == nil {
		t.Fatal("Init returned no command")
	}
	s.Update(cmd())
	return s
}

func TestHistory_GroupsAnswersBySession(t *testing.T) {
	src := &fakeSource{
		sessions: []store.SessionRecord{{
			Timestamp:        time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
			SessionEventData: store.SessionEventData{SessionID: "s1", Action: "end", SoundID: "beh", Level: "cv", QuestionsServed: 2, CorrectAnswers: 1, DurationSecs: 65},
		}},
		// Newest first, as the event log returns them.
		answers: []store.AnswerEvent{
			{Sequence: 3, AnswerEventData: store.AnswerEventData{SessionID: "s1", SoundID: "beh", Level: "cv", Correct: false, ConfusedWith: "م"}},
			{Sequence: 2, AnswerEventData: store.AnswerEventData{SessionID: "s1", SoundID: "beh", Level: "cv", Correct: true}},
			{Sequence: 1, AnswerEventData: store.AnswerEventData{SessionID: "other", SoundID: "teh", Level: "cv", Correct: true}},
		},
	}
	s := loaded(t, src)

	got := s.answers["s1"]
	if len(got) != 2 {
		t.Fatalf("s1 answers = %d, want 2", len(got))
	}
	if got[0].Sequence != 2 {
		t.Errorf("first answer sequence = %d, want oldest first", got[0].Sequence)
	}

	view := s.View(100, 30)
	if !strings.Contains(view, "1:05") || !strings.Contains(view, "50%") {
		t.Errorf("view lacks duration or accuracy:\n%s", view)
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !s.expanded[0] {
		t.Error("Enter should expand the selected run")
	}
	if !strings.Contains(s.View(100, 30), "م") {
		t.Error("expanded run should show the confused letter")
	}
}

func TestHistory_EmptyAndError(t *testing.T) {
	s := loaded(t, &fakeSource{})
	if !strings.Contains(s.View(80, 24), "No practice yet") {
		t.Error("expected empty-state message")
	}

	s = loaded(t, &fakeSource{err: errors.New("disk gone")})
	if !strings.Contains(s.View(80, 24), "disk gone") {
		t.Error("expected error message")
	}
}

func TestHistory_Navigation(t *testing.T) {
	src := &fakeSource{sessions: make([]store.SessionRecord, 3)}
	s := loaded(t, src)

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.selected != 2 {
		t.Errorf("selected = %d, want 2", s.selected)
	}

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected pop on Esc")
	}
}
