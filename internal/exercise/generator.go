package exercise

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/abhisek/makhraj/internal/content"
	"github.com/abhisek/makhraj/internal/curriculum"
	"github.com/abhisek/makhraj/internal/judge"
	"github.com/abhisek/makhraj/internal/logger"
	"github.com/abhisek/makhraj/internal/phoneme"
)

// Question counts used when the caller passes n <= 0.
const (
	DefaultQuestionCount = 5
	DefaultReviewCount   = 6
)

var (
	// ErrUnknownSound is returned for a sound missing from the phoneme table.
	ErrUnknownSound = errors.New("unknown sound")

	// ErrNoQuestions is returned when no question can be built for the
	// requested sound and level.
	ErrNoQuestions = errors.New("no questions available")
)

// Generator builds exercises from the phoneme table and a content bank.
// It owns its RNG and is not safe for concurrent use.
type Generator struct {
	rng        *rand.Rand
	bank       *content.Bank
	validators []Validator
	log        *logger.Logger
	now        func() time.Time
}

// NewGenerator creates a generator. A nil rng is seeded from the clock and
// a nil bank falls back to the embedded content.
func NewGenerator(rng *rand.Rand, bank *content.Bank) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	if bank == nil {
		bank = content.Default()
	}
	return &Generator{
		rng:        rng,
		bank:       bank,
		validators: DefaultValidators(),
		log:        logger.Nop(),
		now:        time.Now,
	}
}

// WithLogger sets the logger used to report rejected questions.
func (g *Generator) WithLogger(l *logger.Logger) *Generator {
	if l != nil {
		g.log = l
	}
	return g
}

// Questions returns every question available for a sound at a level, with
// options shuffled. Questions that fail validation are dropped.
func (g *Generator) Questions(soundID string, level curriculum.Level) []Question {
	p, ok := phoneme.Resolve(soundID)
	if !ok {
		return nil
	}
	b := &builder{p: p, similar: phoneme.Similar(p.Letter), ex: g.bank.Examples(p.ID)}

	var raw []Question
	switch level {
	case curriculum.Isolation:
		raw = b.isolation()
	case curriculum.CV:
		raw = b.cv()
	case curriculum.VC:
		raw = b.vc()
	case curriculum.VCV:
		raw = b.vcv()
	case curriculum.NonsenseWords:
		raw = b.nonsenseWords()
	case curriculum.RealWords:
		raw = b.realWords()
	case curriculum.Phrases:
		raw = b.phrases()
	case curriculum.Sentences:
		raw = b.sentences()
	case curriculum.StoryRetelling:
		raw = b.storyRetelling()
	case curriculum.StoryTelling:
		raw = b.storyTelling()
	case curriculum.Questions:
		raw = b.questions()
	case curriculum.Spontaneous:
		raw = b.spontaneous()
	}

	out := make([]Question, 0, len(raw))
	for i := range raw {
		q := raw[i]
		q.Options = dedupeOptions(q.Options, &q.CorrectAnswer)
		if verr := runValidators(g.validators, &q); verr != nil {
			g.log.Debug("dropping question", "id", q.ID, "error", verr.Error())
			continue
		}
		if !b.fixedOrder[q.ID] {
			g.shuffleOptions(&q)
		}
		out = append(out, q)
	}
	return out
}

// Exercise picks up to n random questions for a sound at a level.
func (g *Generator) Exercise(soundID string, level curriculum.Level, n int) (*Exercise, error) {
	return g.Custom(soundID, level, "", n)
}

// Custom is Exercise restricted to one word position. The position filter
// applies to real-word items only; other levels ignore it.
func (g *Generator) Custom(soundID string, level curriculum.Level, pos curriculum.Position, n int) (*Exercise, error) {
	p, ok := phoneme.Resolve(soundID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSound, soundID)
	}
	if n <= 0 {
		n = DefaultQuestionCount
	}

	questions := g.Questions(p.ID, level)
	if pos != "" && level == curriculum.RealWords {
		filtered := questions[:0]
		for _, q := range questions {
			if q.Position == pos {
				filtered = append(filtered, q)
			}
		}
		questions = filtered
	}
	shuffle(g.rng, questions)
	if len(questions) > n {
		questions = questions[:n]
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: %s at %s", ErrNoQuestions, p.ID, level)
	}

	title := fmt.Sprintf("تدريب صوت %s - %s", p.Letter, curriculum.DisplayName(level))
	id := fmt.Sprintf("exercise-%s-%s-%d", p.ID, level, g.now().UnixMilli())
	desc := fmt.Sprintf("تدريبات على صوت %s في مرحلة %s", p.Name, curriculum.DisplayName(level))
	if pos != "" {
		title += " - " + curriculum.PositionName(pos)
		id = fmt.Sprintf("custom-%s-%s-%s-%d", p.ID, level, pos, g.now().UnixMilli())
		desc = fmt.Sprintf("تدريبات مخصصة على صوت %s", p.Name)
	}
	return &Exercise{
		ID:          id,
		Title:       title,
		Description: desc,
		TargetSound: p.Letter,
		Level:       level,
		Difficulty:  curriculum.DifficultyOf(level),
		Questions:   questions,
	}, nil
}

// SimilarSoundsReview builds a discrimination drill between two sounds:
// one isolated-sound item per sound plus word items from each.
func (g *Generator) SimilarSoundsReview(a, b string, n int) (*Exercise, error) {
	pa, ok := phoneme.Resolve(a)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSound, a)
	}
	pb, ok := phoneme.Resolve(b)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSound, b)
	}
	if n <= 0 {
		n = DefaultReviewCount
	}

	pair := []judge.Option{{Text: pa.Letter, Phoneme: pa.Letter}, {Text: pb.Letter, Phoneme: pb.Letter}}
	var questions []Question
	for i, p := range []phoneme.Phoneme{pa, pb} {
		questions = append(questions, Question{
			ID:               fmt.Sprintf("compare-%s-%d", p.ID, i),
			TargetSound:      p.Letter,
			Level:            curriculum.Isolation,
			Prompt:           fmt.Sprintf("استمع وحدد: هل هذا صوت %s أم %s؟", pa.Letter, pb.Letter),
			Audio:            p.Letter,
			AudioDescription: fmt.Sprintf("صوت %s", p.Letter),
			Options:          append([]judge.Option(nil), pair...),
			CorrectAnswer:    i,
			Hint:             fmt.Sprintf("%s مخرجه %s", p.Letter, p.ArticulationDescription),
			Explanation:      fmt.Sprintf("هذا صوت %s، مخرجه: %s", p.Name, p.ArticulationDescription),
		})
	}

	idx := 0
	for i, p := range []phoneme.Phoneme{pa, pb} {
		words := g.bank.Examples(p.ID).Words(curriculum.Initial, curriculum.Bi)
		if len(words) > 2 {
			words = words[:2]
		}
		for _, w := range words {
			opts := append([]judge.Option(nil), pair...)
			opts = append(opts, judge.MetaOptions("كلاهما", "لا أحد منهما")...)
			questions = append(questions, Question{
				ID:               fmt.Sprintf("word-compare-%d", idx),
				TargetSound:      p.Letter,
				Level:            curriculum.RealWords,
				Position:         curriculum.Initial,
				SyllableCount:    curriculum.Bi,
				Prompt:           "الكلمة التي سمعتها تحتوي على صوت:",
				Audio:            w,
				AudioDescription: fmt.Sprintf("الكلمة: %s", w),
				Options:          opts,
				CorrectAnswer:    i,
				Hint:             "ركز على الصوت في بداية الكلمة",
				Explanation:      fmt.Sprintf("الكلمة %s تحتوي على صوت %s", w, p.Name),
			})
			idx++
		}
	}

	shuffle(g.rng, questions)
	if len(questions) > n {
		questions = questions[:n]
	}
	return &Exercise{
		ID:          fmt.Sprintf("review-%s-%s-%d", pa.ID, pb.ID, g.now().UnixMilli()),
		Title:       fmt.Sprintf("مراجعة الفرق بين %s و %s", pa.Letter, pb.Letter),
		Description: fmt.Sprintf("تدريبات للتمييز بين صوت %s وصوت %s", pa.Name, pb.Name),
		TargetSound: pa.Letter + "-" + pb.Letter,
		Level:       curriculum.Isolation,
		Difficulty:  curriculum.Intermediate,
		Questions:   questions,
	}, nil
}

// shuffle is an in-place Fisher–Yates shuffle.
func shuffle[T any](r *rand.Rand, xs []T) {
	for i := len(xs) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		xs[i], xs[j] = xs[j], xs[i]
	}
}

// shuffleOptions reorders options and keeps CorrectAnswer pointing at the
// same option.
func (g *Generator) shuffleOptions(q *Question) {
	order := make([]int, len(q.Options))
	for i := range order {
		order[i] = i
	}
	shuffle(g.rng, order)

	opts := make([]judge.Option, len(order))
	correct := q.CorrectAnswer
	for i, from := range order {
		opts[i] = q.Options[from]
		if from == q.CorrectAnswer {
			correct = i
		}
	}
	q.Options = opts
	q.CorrectAnswer = correct
}

// dedupeOptions drops options whose text repeats an earlier one, adjusting
// the correct index.
func dedupeOptions(opts []judge.Option, correct *int) []judge.Option {
	seen := make(map[string]bool, len(opts))
	out := make([]judge.Option, 0, len(opts))
	newCorrect := -1
	for i, o := range opts {
		if seen[o.Text] {
			continue
		}
		seen[o.Text] = true
		if i == *correct {
			newCorrect = len(out)
		}
		out = append(out, o)
	}
	*correct = newCorrect
	return out
}
