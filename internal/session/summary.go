package session

import (
	"time"

	"github.com/abhisek/makhraj/internal/mastery"
	"github.com/abhisek/makhraj/internal/phoneme"
	"github.com/abhisek/makhraj/internal/recommend"
)

// SessionSummary holds the data displayed on the summary screen.
type SessionSummary struct {
	Title          string
	Duration       time.Duration
	TotalQuestions int
	TotalCorrect   int
	Accuracy       int // percent
	Transitions    []mastery.StateTransition
	Patterns       []recommend.ErrorPattern
	Next           recommend.Suggestion
}

// BuildSummary creates a SessionSummary from the current session state.
func BuildSummary(state *SessionState) *SessionSummary {
	s := &SessionSummary{
		Duration:       state.Elapsed,
		TotalQuestions: state.TotalQuestions,
		TotalCorrect:   state.TotalCorrect,
		Transitions:    state.Transitions,
		Patterns:       recommend.AnalyzeErrorPatterns(state.Errors),
	}
	if state.Exercise != nil {
		s.Title = state.Exercise.Title
	}
	if s.TotalQuestions > 0 {
		s.Accuracy = (s.TotalCorrect*100 + s.TotalQuestions/2) / s.TotalQuestions
	}
	s.Next = recommend.SuggestNextExercise(targetLetter(state), state.Recent, state.Confusions)
	return s
}

// targetLetter is the sound the run trained. Reviews of two sounds and
// catalogue runs fall back to the first question with a known target.
func targetLetter(state *SessionState) string {
	if state.Exercise == nil {
		return ""
	}
	if p, ok := phoneme.Resolve(state.Exercise.TargetSound); ok {
		return p.Letter
	}
	for _, q := range state.Exercise.Questions {
		if _, ok := phoneme.ByLetter(q.TargetSound); ok {
			return q.TargetSound
		}
	}
	return ""
}
