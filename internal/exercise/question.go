// Package exercise builds listening exercises for a sound at each level of
// the curriculum and keeps the catalogue of authored exercises.
package exercise

import (
	"time"

	"github.com/abhisek/makhraj/internal/curriculum"
	"github.com/abhisek/makhraj/internal/judge"
)

// SecondsPerQuestion is the time budget used for duration estimates.
const SecondsPerQuestion = 30

// Question is one multiple-choice listening item.
type Question struct {
	ID          string
	TargetSound string // letter
	Level       curriculum.Level

	// Position and SyllableCount are set only for real-word items.
	Position      curriculum.Position
	SyllableCount curriculum.SyllableCount

	Prompt string

	// Audio is the text handed to the speech synthesizer.
	Audio string

	// AudioDescription tells the learner what they are about to hear.
	AudioDescription string

	Options          []judge.Option
	CorrectAnswer    int
	DistractorSounds []string
	Hint             string
	Explanation      string
}

// Correct returns the correct option.
func (q *Question) Correct() judge.Option {
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
		return judge.Option{}
	}
	return q.Options[q.CorrectAnswer]
}

// JudgeInput builds the judge input for a chosen option index.
func (q *Question) JudgeInput(selected int) judge.Input {
	return judge.Input{
		TargetSound: q.TargetSound,
		Selected:    selected,
		Correct:     q.CorrectAnswer,
		Options:     q.Options,
		Level:       q.Level,
		Position:    q.Position,
	}
}

// Exercise is an ordered run of questions on one sound and level.
type Exercise struct {
	ID          string
	Title       string
	Description string
	TargetSound string
	Level       curriculum.Level
	Difficulty  curriculum.Difficulty
	Questions   []Question
}

// EstimatedDuration is the expected time to answer every question.
func (e *Exercise) EstimatedDuration() time.Duration {
	return time.Duration(len(e.Questions)*SecondsPerQuestion) * time.Second
}
