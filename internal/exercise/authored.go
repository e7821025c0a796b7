package exercise

import (
	"fmt"

	"github.com/abhisek/makhraj/internal/curriculum"
	"github.com/abhisek/makhraj/internal/judge"
	"github.com/abhisek/makhraj/internal/phoneme"
)

// kindLevel maps an authored exercise type onto the curriculum level its
// answers are recorded against.
var kindLevel = map[Kind]curriculum.Level{
	KindTone:     curriculum.Isolation,
	KindWord:     curriculum.RealWords,
	KindSentence: curriculum.Sentences,
}

// FromEntry turns a catalogue entry into a playable exercise. Randomized
// items pick their answer, and so their audio, at random. When the correct
// option of an item is a single letter that letter becomes the item's
// target sound; otherwise the item is judged without phoneme detail.
func (g *Generator) FromEntry(e Entry) (*Exercise, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	level := kindLevel[e.Type]
	ex := &Exercise{
		ID:          fmt.Sprintf("catalogue-%s-%d", e.ID, g.now().UnixMilli()),
		Title:       e.Title,
		Description: e.Description,
		Level:       level,
		Difficulty:  e.Difficulty,
	}

	for _, aq := range e.Questions {
		q := Question{
			ID:            e.ID + "-" + aq.ID,
			Level:         level,
			Prompt:        aq.Prompt,
			Audio:         aq.Audio,
			CorrectAnswer: aq.CorrectAnswer,
		}
		for _, text := range aq.Options {
			opt := judge.Option{Text: text}
			if p, ok := phoneme.ByLetter(text); ok {
				opt.Phoneme = p.Letter
			}
			q.Options = append(q.Options, opt)
		}
		if aq.Randomized {
			q.CorrectAnswer = g.rng.IntN(len(q.Options))
			q.Audio = q.Options[q.CorrectAnswer].Text
		}
		q.TargetSound = q.Correct().Phoneme
		ex.Questions = append(ex.Questions, q)
	}

	if len(ex.Questions) > 0 {
		ex.TargetSound = ex.Questions[0].TargetSound
	}
	return ex, nil
}
