package judge

import (
	"math/rand/v2"
	"time"

	"github.com/abhisek/makhraj/internal/curriculum"
	"github.com/abhisek/makhraj/internal/phoneme"
)

// WordSource supplies practice words for feedback.
type WordSource interface {
	PracticeWords(soundID string, syl curriculum.SyllableCount, n int) []string
}

// Judge evaluates answers to multiple-choice listening questions.
// It is not safe for concurrent use because it owns its RNG.
type Judge struct {
	rng         *rand.Rand
	words       WordSource
	classifiers []Classifier
}

// New creates a Judge. rng drives the choice of encouragement messages;
// pass a seeded source for reproducible output. words may be nil.
func New(rng *rand.Rand, words WordSource) *Judge {
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	return &Judge{
		rng:         rng,
		words:       words,
		classifiers: DefaultClassifiers(),
	}
}

// Evaluate judges one answer. It never fails: unknown sounds and malformed
// options degrade to a generic verdict.
func (j *Judge) Evaluate(in Input) *Result {
	res := &Result{
		IsCorrect:   in.Selected == in.Correct,
		TargetSound: in.TargetSound,
	}

	if !res.IsCorrect {
		opt := optionAt(in.Options, in.Selected)
		res.SelectedSound = opt.Text
		res.PositionStruggle = in.Position

		extracted := RepresentativePhoneme(in.TargetSound, opt)
		res.ExtractedSound = extracted
		if extracted != "" && extracted != in.TargetSound {
			res.SimilarityScore = phoneme.Similarity(in.TargetSound, extracted)
			if res.SimilarityScore >= ConfusionThreshold {
				res.IsConfusionError = true
				res.ConfusedWith = extracted
				res.ConfusionType, _ = RunClassifiers(j.classifiers, &ClassifyInput{
					Target:   in.TargetSound,
					Selected: extracted,
				})
			}
		}
	}

	res.NextAction = nextAction(res, in.Level)
	res.ShouldRepeat = res.NextAction == ActionPracticeSimilar || res.NextAction == ActionReview
	res.Feedback = j.feedback(res, in.Level)
	return res
}

func nextAction(res *Result, level curriculum.Level) NextAction {
	switch {
	case res.IsCorrect:
		return ActionContinue
	case res.IsConfusionError && res.SimilarityScore >= RemedialThreshold:
		return ActionPracticeSimilar
	case curriculum.IsFoundational(level):
		return ActionReview
	default:
		return ActionRepeat
	}
}

// optionAt returns the option at i, or an empty option when i is out of range.
func optionAt(opts []Option, i int) Option {
	if i < 0 || i >= len(opts) {
		return Option{}
	}
	return opts[i]
}
