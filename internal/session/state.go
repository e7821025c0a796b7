package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/makhraj/internal/exercise"
	"github.com/abhisek/makhraj/internal/mastery"
	"github.com/abhisek/makhraj/internal/recommend"
	"github.com/abhisek/makhraj/internal/trainer"
)

// SessionPhase represents the current phase of the session.
type SessionPhase int

const (
	PhaseActive   SessionPhase = iota // Waiting for an answer
	PhaseFeedback                     // Showing answer feedback
	PhaseSummary                      // All questions answered
)

// Evaluator judges and records one answer. *trainer.Trainer implements it.
type Evaluator interface {
	Evaluate(sessionID string, q exercise.Question, selected int) trainer.Outcome
}

// AnswerRecord is one answered question.
type AnswerRecord struct {
	Question exercise.Question
	Selected int
	Outcome  trainer.Outcome
}

// SessionState tracks the runtime state of one exercise run.
type SessionState struct {
	// SessionID is the UUID for this session.
	SessionID string

	Exercise *exercise.Exercise

	// Index is the position of the current question in Exercise.Questions.
	Index int

	Phase SessionPhase

	TotalQuestions int
	TotalCorrect   int

	// Answers holds every answered question in order.
	Answers []AnswerRecord

	// Recent is the trailing window of results used to suggest the next
	// exercise.
	Recent []recommend.RecentResult

	// Errors holds every wrong answer of the run, for pattern analysis.
	Errors []recommend.ErrorRecord

	// Confusions counts confused letters within this run.
	Confusions map[string]int

	// Transitions collects level status changes caused by this run.
	Transitions []mastery.StateTransition

	// LastOutcome is the verdict for the most recent answer.
	LastOutcome *trainer.Outcome

	StartTime time.Time
	Elapsed   time.Duration
}

// NewSessionState starts a run of ex. An empty sessionID gets a fresh UUID.
func NewSessionState(ex *exercise.Exercise, sessionID string) *SessionState {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	state := &SessionState{
		SessionID:  sessionID,
		Exercise:   ex,
		Phase:      PhaseActive,
		Confusions: make(map[string]int),
		StartTime:  time.Now(),
	}
	if ex == nil || len(ex.Questions) == 0 {
		state.Phase = PhaseSummary
	}
	return state
}
