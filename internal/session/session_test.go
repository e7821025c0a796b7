package session

import (
	"context"
	"testing"

	"github.com/abhisek/makhraj/internal/curriculum"
	"github.com/abhisek/makhraj/internal/exercise"
	"github.com/abhisek/makhraj/internal/judge"
	"github.com/abhisek/makhraj/internal/recommend"
	"github.com/abhisek/makhraj/internal/trainer"
)

func newTrainer(t *testing.T) *trainer.Trainer {
	t.Helper()
	return trainer.New(context.Background(), trainer.Options{Seed: 11, UnlockAll: true})
}

func testState(t *testing.T, tr *trainer.Trainer, sound string, level curriculum.Level) *SessionState {
	t.Helper()
	ex, err := tr.Exercise(sound, level)
	if err != nil {
		t.Fatalf("Exercise: %v", err)
	}
	return NewSessionState(ex, "test-session-id")
}

func TestSession_AllCorrect(t *testing.T) {
	tr := newTrainer(t)
	state := testState(t, tr, "beh", curriculum.Isolation)
	n := len(state.Exercise.Questions)

	for i := 0; i < n; i++ {
		q := CurrentQuestion(state)
		if q == nil {
			t.Fatalf("question %d missing", i)
		}
		out := HandleAnswer(state, tr, q.CorrectAnswer)
		if out == nil || !out.Result.IsCorrect {
			t.Fatalf("answer %d: %+v", i, out)
		}
		if state.Phase != PhaseFeedback {
			t.Errorf("phase = %v, want feedback", state.Phase)
		}
		if again := HandleAnswer(state, tr, 0); again != nil {
			t.Error("second answer during feedback was accepted")
		}
		more := Advance(state)
		if more != (i < n-1) {
			t.Errorf("Advance after %d = %v", i, more)
		}
	}

	if !Done(state) {
		t.Fatal("session not done")
	}
	if CurrentQuestion(state) != nil {
		t.Error("CurrentQuestion after the end is not nil")
	}

	s := BuildSummary(state)
	if s.TotalQuestions != n || s.TotalCorrect != n || s.Accuracy != 100 {
		t.Errorf("summary = %+v", s)
	}
	if len(s.Transitions) == 0 {
		t.Error("expected the first answer to change the level status")
	}
	if len(s.Patterns) != 0 {
		t.Errorf("patterns = %v, want none", s.Patterns)
	}
	if s.Next.SoundID != "beh" || s.Next.Priority != recommend.Low {
		t.Errorf("next = %+v", s.Next)
	}
}

func TestSession_ConfusionsFeedSummary(t *testing.T) {
	tr := newTrainer(t)
	state := testState(t, tr, "teh", curriculum.CV)

	for CurrentQuestion(state) != nil {
		q := CurrentQuestion(state)
		pick := -1
		for i, o := range q.Options {
			if o.Phoneme == "ط" {
				pick = i
			}
		}
		if pick < 0 {
			t.Fatalf("%s: no ط distractor", q.ID)
		}
		HandleAnswer(state, tr, pick)
		Advance(state)
	}

	n := state.TotalQuestions
	if state.TotalCorrect != 0 || len(state.Errors) != n {
		t.Errorf("correct %d errors %d, want 0 and %d", state.TotalCorrect, len(state.Errors), n)
	}
	if state.Confusions["ط"] != n {
		t.Errorf("confusions = %v", state.Confusions)
	}

	s := BuildSummary(state)
	if len(s.Patterns) == 0 || s.Patterns[0].Frequency != n {
		t.Errorf("patterns = %+v", s.Patterns)
	}
	if s.Next.Priority != recommend.High || s.Next.Level != curriculum.Isolation {
		t.Errorf("next = %+v, want high-priority isolation review", s.Next)
	}
}

type fixedEvaluator struct{ correct bool }

func (f fixedEvaluator) Evaluate(_ string, q exercise.Question, selected int) trainer.Outcome {
	return trainer.Outcome{Result: &judge.Result{IsCorrect: f.correct, TargetSound: q.TargetSound}}
}

func TestSession_RecentWindow(t *testing.T) {
	q := exercise.Question{TargetSound: "ب", Level: curriculum.CV, Options: judge.TextOptions("بَ", "مَ")}
	ex := &exercise.Exercise{TargetSound: "beh", Level: curriculum.CV}
	for i := 0; i < MaxRecentResults+3; i++ {
		ex.Questions = append(ex.Questions, q)
	}
	state := NewSessionState(ex, "")
	if len(state.SessionID) != 36 {
		t.Errorf("SessionID = %q, want a UUID", state.SessionID)
	}

	for Advance(state) || state.Phase == PhaseActive {
		HandleAnswer(state, fixedEvaluator{correct: true}, 0)
	}
	if len(state.Recent) != MaxRecentResults {
		t.Errorf("recent = %d, want %d", len(state.Recent), MaxRecentResults)
	}
	if state.TotalQuestions != MaxRecentResults+3 {
		t.Errorf("total = %d", state.TotalQuestions)
	}
}

func TestSession_EmptyExercise(t *testing.T) {
	state := NewSessionState(&exercise.Exercise{}, "x")
	if !Done(state) {
		t.Error("empty exercise should start done")
	}
	if HandleAnswer(state, fixedEvaluator{}, 0) != nil {
		t.Error("answer accepted on empty exercise")
	}
	s := BuildSummary(state)
	if s.Accuracy != 0 || s.TotalQuestions != 0 {
		t.Errorf("summary = %+v", s)
	}
}

func TestSession_Events(t *testing.T) {
	ex := &exercise.Exercise{TargetSound: "beh", Level: curriculum.CV, Questions: []exercise.Question{{TargetSound: "ب", Level: curriculum.CV}}}
	state := NewSessionState(ex, "s1")
	HandleAnswer(state, fixedEvaluator{correct: true}, 0)
	Advance(state)

	start := StartEvent(state)
	if start.Action != ActionStart || start.SoundID != "beh" || start.Level != "cv" {
		t.Errorf("start = %+v", start)
	}
	end := EndEvent(state)
	if end.Action != ActionEnd || end.QuestionsServed != 1 || end.CorrectAnswers != 1 || end.SessionID != "s1" {
		t.Errorf("end = %+v", end)
	}
}
