package session

import (
	"time"

	"github.com/abhisek/makhraj/internal/exercise"
	"github.com/abhisek/makhraj/internal/phoneme"
	"github.com/abhisek/makhraj/internal/recommend"
	"github.com/abhisek/makhraj/internal/store"
	"github.com/abhisek/makhraj/internal/trainer"
)

// MaxRecentResults is the size of the trailing result window.
const MaxRecentResults = 10

// Session event actions.
const (
	ActionStart = "start"
	ActionEnd   = "end"
)

// CurrentQuestion returns the question being asked, or nil once the run is
// over.
func CurrentQuestion(state *SessionState) *exercise.Question {
	if state.Exercise == nil || state.Index >= len(state.Exercise.Questions) {
		return nil
	}
	return &state.Exercise.Questions[state.Index]
}

// HandleAnswer judges the selected option of the current question and moves
// the session to the feedback phase. It returns nil when no question is
// waiting for an answer.
func HandleAnswer(state *SessionState, ev Evaluator, selected int) *trainer.Outcome {
	if state.Phase != PhaseActive {
		return nil
	}
	q := CurrentQuestion(state)
	if q == nil {
		return nil
	}

	out := ev.Evaluate(state.SessionID, *q, selected)
	res := out.Result

	state.TotalQuestions++
	if res.IsCorrect {
		state.TotalCorrect++
	}
	state.Answers = append(state.Answers, AnswerRecord{Question: *q, Selected: selected, Outcome: out})
	state.Transitions = append(state.Transitions, out.Transitions...)

	state.Recent = append(state.Recent, recommend.RecentResult{
		Correct:  res.IsCorrect,
		Level:    q.Level,
		Position: q.Position,
	})
	if len(state.Recent) > MaxRecentResults {
		state.Recent = state.Recent[len(state.Recent)-MaxRecentResults:]
	}

	if !res.IsCorrect {
		selectedSound := res.ExtractedSound
		if selectedSound == "" {
			selectedSound = res.SelectedSound
		}
		state.Errors = append(state.Errors, recommend.ErrorRecord{
			TargetSound:   q.TargetSound,
			SelectedSound: selectedSound,
			Position:      q.Position,
			Level:         q.Level,
		})
		if res.ConfusedWith != "" {
			state.Confusions[res.ConfusedWith]++
		}
	}

	state.LastOutcome = &out
	state.Phase = PhaseFeedback
	state.Elapsed = time.Since(state.StartTime)
	return &out
}

// Advance leaves the feedback phase for the next question. It returns false
// when there are no questions left, in which case the session moves to the
// summary phase.
func Advance(state *SessionState) bool {
	if state.Phase == PhaseSummary {
		return false
	}
	if state.Phase == PhaseFeedback {
		state.Index++
	}
	state.LastOutcome = nil
	if CurrentQuestion(state) == nil {
		state.Phase = PhaseSummary
		state.Elapsed = time.Since(state.StartTime)
		return false
	}
	state.Phase = PhaseActive
	return true
}

// Done reports whether every question has been answered.
func Done(state *SessionState) bool {
	return state.Phase == PhaseSummary
}

// StartEvent describes the start of the run for the event log.
func StartEvent(state *SessionState) store.SessionEventData {
	data := store.SessionEventData{SessionID: state.SessionID, Action: ActionStart}
	if state.Exercise != nil {
		data.SoundID = state.Exercise.TargetSound
		if p, ok := phoneme.Resolve(data.SoundID); ok {
			data.SoundID = p.ID
		}
		data.Level = string(state.Exercise.Level)
	}
	return data
}

// EndEvent describes the end of the run for the event log.
func EndEvent(state *SessionState) store.SessionEventData {
	data := StartEvent(state)
	data.Action = ActionEnd
	data.QuestionsServed = state.TotalQuestions
	data.CorrectAnswers = state.TotalCorrect
	data.DurationSecs = int(state.Elapsed.Seconds())
	return data
}
