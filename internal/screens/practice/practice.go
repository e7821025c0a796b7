package practice

import (
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/makhraj/internal/exercise"
	"github.com/abhisek/makhraj/internal/judge"
	"github.com/abhisek/makhraj/internal/router"
	"github.com/abhisek/makhraj/internal/screen"
	"github.com/abhisek/makhraj/internal/screens/summary"
	sess "github.com/abhisek/makhraj/internal/session"
	"github.com/abhisek/makhraj/internal/trainer"
	"github.com/abhisek/makhraj/internal/ui/components"
	"github.com/abhisek/makhraj/internal/ui/layout"
)

// Builder produces the exercise a practice screen runs.
type Builder func() (*exercise.Exercise, error)

// PracticeScreen runs one exercise: it plays each question's audio, takes
// the learner's choice and shows the judge's feedback.
type PracticeScreen struct {
	tr          *trainer.Trainer
	build       Builder
	state       *sess.SessionState
	choice      components.MultiChoice
	quitConfirm bool
	ended       bool
	errMsg      string
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)
var _ screen.EscapeCapturer = (*PracticeScreen)(nil)

// New creates a practice screen for the exercise returned by build.
func New(tr *trainer.Trainer, build Builder) *PracticeScreen {
	return &PracticeScreen{tr: tr, build: build}
}

// ForSlot practices one plan slot: a level of a sound, narrowed to a word
// position when the slot names one, or a review against a similar sound.
func ForSlot(tr *trainer.Trainer, slot sess.PlanSlot) *PracticeScreen {
	return New(tr, func() (*exercise.Exercise, error) {
		switch {
		case slot.Partner != "":
			return tr.ReviewSimilar(slot.Letter, slot.Partner)
		case slot.Position != "":
			return tr.CustomExercise(slot.SoundID, slot.Level, slot.Position)
		default:
			return tr.Exercise(slot.SoundID, slot.Level)
		}
	})
}

// ForCatalogue practices an authored exercise.
func ForCatalogue(tr *trainer.Trainer, id string) *PracticeScreen {
	return New(tr, func() (*exercise.Exercise, error) {
		return tr.CatalogueExercise(id)
	})
}

func (s *PracticeScreen) Init() tea.Cmd {
	// The trainer is not safe for concurrent use, so the exercise is built
	// here on the update goroutine.
	ex, err := s.build()
	var msg practiceInitMsg
	if err != nil {
		msg.Err = err
	} else {
		msg.State = sess.NewSessionState(ex, "")
	}
	return func() tea.Msg { return msg }
}

// CapturesEscape keeps Esc on this screen while a run is in progress so
// it can ask before quitting.
func (s *PracticeScreen) CapturesEscape() bool {
	return s.state != nil && !s.ended && s.errMsg == ""
}

func (s *PracticeScreen) Title() string {
	if s.state != nil && s.state.Exercise != nil {
		return s.state.Exercise.Title
	}
	return "Practice"
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	if s.state == nil {
		return nil
	}
	if s.quitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End practice"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.state.Phase == sess.PhaseFeedback {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "S", Description: "Listen again"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: "Answer"},
		{Key: "S", Description: "Listen"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *PracticeScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.state == nil {
		return renderLoading(width)
	}
	if s.quitConfirm {
		return renderQuitConfirm(width)
	}
	if s.state.Phase == sess.PhaseFeedback {
		return s.renderFeedback(width)
	}
	return s.renderQuestionView(width)
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case practiceInitMsg:
		return s.handleInit(msg)

	case timerTickMsg:
		if s.state == nil || s.ended {
			return s, nil
		}
		s.state.Elapsed = time.Since(s.state.StartTime)
		return s, tickCmd()

	case practiceEndMsg:
		return s.handleEnd()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *PracticeScreen) handleInit(msg practiceInitMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.state = msg.State
	s.tr.RecordSession(sess.StartEvent(s.state))
	if sess.Done(s.state) {
		return s, func() tea.Msg { return practiceEndMsg{} }
	}
	s.showQuestion()
	return s, tickCmd()
}

// showQuestion prepares the choice widget for the current question and
// plays its audio.
func (s *PracticeScreen) showQuestion() {
	q := sess.CurrentQuestion(s.state)
	if q == nil {
		return
	}
	labels := make([]string, len(q.Options))
	for i, o := range q.Options {
		labels[i] = o.Text
	}
	s.choice = components.NewMultiChoice(q.Prompt, labels, q.CorrectAnswer)
	s.tr.Speak(q.Audio)
}

func (s *PracticeScreen) handleEnd() (screen.Screen, tea.Cmd) {
	if s.state == nil || s.ended {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	s.ended = true
	s.state.Elapsed = time.Since(s.state.StartTime)
	s.tr.RecordSession(sess.EndEvent(s.state))

	sum := sess.BuildSummary(s.state)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum)}
	}
}

func (s *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.state == nil || s.ended {
		return s, nil
	}

	if s.quitConfirm {
		switch msg.String() {
		case "y", "Y":
			s.quitConfirm = false
			return s, func() tea.Msg { return practiceEndMsg{} }
		case "n", "N", "esc":
			s.quitConfirm = false
		}
		return s, nil
	}

	if msg.String() == "esc" {
		s.quitConfirm = true
		return s, nil
	}

	q := sess.CurrentQuestion(s.state)
	if key.Matches(msg, components.Keys.Speak) && q != nil {
		s.tr.Speak(q.Audio)
		return s, nil
	}

	switch s.state.Phase {
	case sess.PhaseFeedback:
		if !key.Matches(msg, components.Keys.Next) {
			return s, nil
		}
		if !sess.Advance(s.state) {
			return s, func() tea.Msg { return practiceEndMsg{} }
		}
		s.showQuestion()
		return s, nil

	case sess.PhaseActive:
		var cmd tea.Cmd
		s.choice, cmd = s.choice.Update(msg)
		if s.choice.Submitted {
			sess.HandleAnswer(s.state, s.tr, s.choice.ChosenIndex)
		}
		return s, cmd
	}
	return s, nil
}

// outcome returns the verdict of the last answer, or nil.
func (s *PracticeScreen) outcome() *judge.Result {
	if s.state == nil || s.state.LastOutcome == nil {
		return nil
	}
	return s.state.LastOutcome.Result
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
