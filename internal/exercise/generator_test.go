package exercise

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/makhraj/internal/curriculum"
	"github.com/abhisek/makhraj/internal/judge"
	"github.com/abhisek/makhraj/internal/phoneme"
)

func newTestGenerator(seed uint64) *Generator {
	return NewGenerator(rand.New(rand.NewPCG(seed, 0)), nil)
}

func TestQuestions_EveryLevelValid(t *testing.T) {
	g := newTestGenerator(1)
	for _, level := range curriculum.Order() {
		qs := g.Questions("beh", level)
		if len(qs) == 0 {
			t.Errorf("beh %s: no questions", level)
			continue
		}
		for _, q := range qs {
			if err := (&StructuralValidator{}).Validate(&q); err != nil {
				t.Errorf("%s: %v", q.ID, err)
			}
			if q.TargetSound != "ب" {
				t.Errorf("%s: TargetSound = %q, want ب", q.ID, q.TargetSound)
			}
			if q.Level != level {
				t.Errorf("%s: Level = %q, want %q", q.ID, q.Level, level)
			}
		}
	}
}

func TestQuestions_CorrectOptionIsWhatIsHeard(t *testing.T) {
	g := newTestGenerator(2)
	for _, level := range []curriculum.Level{curriculum.CV, curriculum.VC, curriculum.VCV, curriculum.NonsenseWords, curriculum.RealWords, curriculum.Sentences} {
		for _, q := range g.Questions("beh", level) {
			if got := q.Correct().Text; got != q.Audio {
				t.Errorf("%s: correct option %q, audio %q", q.ID, got, q.Audio)
			}
			if q.Correct().Phoneme != "ب" {
				t.Errorf("%s: correct option phoneme = %q, want ب", q.ID, q.Correct().Phoneme)
			}
		}
	}
}

func TestQuestions_Isolation(t *testing.T) {
	qs := newTestGenerator(3).Questions("ب", curriculum.Isolation)
	if len(qs) != 3 {
		t.Fatalf("len = %d, want 3", len(qs))
	}
	first := qs[0]
	if len(first.Options) != 4 {
		t.Errorf("options = %v, want target plus 3 similar sounds", first.Options)
	}
	if first.Correct().Text != "ب" {
		t.Errorf("correct = %q, want ب", first.Correct().Text)
	}
	for _, o := range first.Options {
		if o.Phoneme != o.Text {
			t.Errorf("letter option %q carries phoneme %q", o.Text, o.Phoneme)
		}
	}

	yesNo := qs[1]
	if yesNo.Options[0].Text != "نعم" || yesNo.CorrectAnswer != 0 {
		t.Errorf("yes/no = %+v, want fixed order with نعم correct", yesNo.Options)
	}
	if yesNo.Options[1].Phoneme != "م" {
		t.Errorf("\"no\" phoneme = %q, want closest similar sound م", yesNo.Options[1].Phoneme)
	}
}

func TestQuestions_CVDistractorsUseSimilarSounds(t *testing.T) {
	qs := newTestGenerator(4).Questions("beh", curriculum.CV)
	if len(qs) != 3 {
		t.Fatalf("len = %d, want 3", len(qs))
	}
	for _, q := range qs {
		var similar int
		for _, o := range q.Options {
			if o.Phoneme == "م" || o.Phoneme == "ف" {
				similar++
			}
		}
		if similar != 2 {
			t.Errorf("%s: %d similar-sound distractors, want 2 (%v)", q.ID, similar, q.Options)
		}
	}
}

func TestQuestions_WrongSimilarOptionJudgedAsConfusion(t *testing.T) {
	qs := newTestGenerator(5).Questions("teh", curriculum.CV)
	j := judge.New(rand.New(rand.NewPCG(1, 1)), nil)
	for _, q := range qs {
		for i, o := range q.Options {
			if o.Phoneme != "ط" {
				continue
			}
			res := j.Evaluate(q.JudgeInput(i))
			if res.IsCorrect || !res.IsConfusionError || res.ConfusedWith != "ط" {
				t.Errorf("%s: choosing %q = %+v, want confusion with ط", q.ID, o.Text, res)
			}
		}
	}
}

func TestQuestions_RealWordsPositions(t *testing.T) {
	qs := newTestGenerator(6).Questions("beh", curriculum.RealWords)
	counts := make(map[curriculum.Position]int)
	for _, q := range qs {
		if !curriculum.ValidPosition(q.Position) || q.SyllableCount == "" {
			t.Errorf("%s: position %q syllables %q", q.ID, q.Position, q.SyllableCount)
		}
		counts[q.Position]++
	}
	if counts[curriculum.Initial] != 6 || counts[curriculum.Medial] != 2 || counts[curriculum.Final] != 2 {
		t.Errorf("position counts = %v, want initial 6, medial 2, final 2", counts)
	}
}

func TestQuestions_PhraseCount(t *testing.T) {
	qs := newTestGenerator(7).Questions("beh", curriculum.Phrases)
	var count *Question
	for i := range qs {
		if strings.HasSuffix(qs[i].ID, "-count") {
			count = &qs[i]
		}
	}
	if count == nil {
		t.Fatal("missing count question")
	}
	// باب البيت has three ب.
	if got := count.Correct().Text; got != "3 مرات" {
		t.Errorf("count answer = %q, want 3 مرات", got)
	}
}

func TestQuestions_UnknownSoundOrMissingContent(t *testing.T) {
	g := newTestGenerator(8)
	if qs := g.Questions("nope", curriculum.Isolation); qs != nil {
		t.Errorf("unknown sound = %v, want nil", qs)
	}
	if qs := g.Questions("waw", curriculum.NonsenseWords); len(qs) != 0 {
		t.Errorf("waw nonsense words = %d questions, want 0", len(qs))
	}
}

func TestQuestions_Deterministic(t *testing.T) {
	a := newTestGenerator(42).Questions("seen", curriculum.RealWords)
	b := newTestGenerator(42).Questions("seen", curriculum.RealWords)
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].CorrectAnswer != b[i].CorrectAnswer || a[i].Options[0] != b[i].Options[0] {
			t.Errorf("question %d differs between identical seeds", i)
		}
	}
}

func TestQuestions_ShuffleMovesCorrectAnswer(t *testing.T) {
	qs := newTestGenerator(9).Questions("beh", curriculum.RealWords)
	moved := false
	for _, q := range qs {
		if q.CorrectAnswer != 0 {
			moved = true
		}
	}
	if !moved {
		t.Error("correct answer always first; options not shuffled")
	}
}

func TestExercise(t *testing.T) {
	g := newTestGenerator(10)
	g.now = func() time.Time { return time.UnixMilli(1000) }

	ex, err := g.Exercise("beh", curriculum.RealWords, 0)
	if err != nil {
		t.Fatalf("Exercise: %v", err)
	}
	if len(ex.Questions) != DefaultQuestionCount {
		t.Errorf("questions = %d, want %d", len(ex.Questions), DefaultQuestionCount)
	}
	if ex.Difficulty != curriculum.Intermediate {
		t.Errorf("difficulty = %q, want intermediate", ex.Difficulty)
	}
	if ex.ID != "exercise-beh-real_words-1000" {
		t.Errorf("ID = %q", ex.ID)
	}
	if ex.EstimatedDuration() != 150*time.Second {
		t.Errorf("duration = %v, want 2m30s", ex.EstimatedDuration())
	}

	ex, err = g.Exercise("ب", curriculum.Isolation, 10)
	if err != nil {
		t.Fatalf("Exercise: %v", err)
	}
	if len(ex.Questions) != 3 || ex.Difficulty != curriculum.Beginner {
		t.Errorf("isolation exercise = %d questions (%s), want all 3, beginner", len(ex.Questions), ex.Difficulty)
	}
}

func TestExercise_Errors(t *testing.T) {
	g := newTestGenerator(11)
	if _, err := g.Exercise("nope", curriculum.CV, 5); !errors.Is(err, ErrUnknownSound) {
		t.Errorf("unknown sound err = %v, want ErrUnknownSound", err)
	}
	if _, err := g.Exercise("waw", curriculum.NonsenseWords, 5); !errors.Is(err, ErrNoQuestions) {
		t.Errorf("no content err = %v, want ErrNoQuestions", err)
	}
}

func TestCustom_FiltersRealWordsByPosition(t *testing.T) {
	ex, err := newTestGenerator(12).Custom("beh", curriculum.RealWords, curriculum.Medial, 10)
	if err != nil {
		t.Fatalf("Custom: %v", err)
	}
	if len(ex.Questions) != 2 {
		t.Errorf("questions = %d, want 2 medial items", len(ex.Questions))
	}
	for _, q := range ex.Questions {
		if q.Position != curriculum.Medial {
			t.Errorf("%s: position %q", q.ID, q.Position)
		}
	}
	if !strings.Contains(ex.Title, curriculum.PositionName(curriculum.Medial)) {
		t.Errorf("title %q lacks position", ex.Title)
	}
}

func TestSimilarSoundsReview(t *testing.T) {
	ex, err := newTestGenerator(13).SimilarSoundsReview("ب", "م", 0)
	if err != nil {
		t.Fatalf("SimilarSoundsReview: %v", err)
	}
	if len(ex.Questions) != DefaultReviewCount {
		t.Fatalf("questions = %d, want %d", len(ex.Questions), DefaultReviewCount)
	}
	if ex.TargetSound != "ب-م" || ex.Difficulty != curriculum.Intermediate {
		t.Errorf("exercise = %+v", ex)
	}
	for _, q := range ex.Questions {
		if q.Correct().Text != q.TargetSound {
			t.Errorf("%s: correct %q, target %q", q.ID, q.Correct().Text, q.TargetSound)
		}
	}

	if _, err := newTestGenerator(13).SimilarSoundsReview("ب", "x", 4); !errors.Is(err, ErrUnknownSound) {
		t.Errorf("err = %v, want ErrUnknownSound", err)
	}
}

func TestDedupeOptions(t *testing.T) {
	correct := 2
	opts := dedupeOptions(judge.TextOptions("a", "a", "b", "c"), &correct)
	if len(opts) != 3 || correct != 1 {
		t.Errorf("dedupe = %v correct %d, want [a b c] correct 1", opts, correct)
	}
}

func TestShuffleOptionsKeepsCorrect(t *testing.T) {
	g := newTestGenerator(14)
	for i := 0; i < 20; i++ {
		q := Question{Options: judge.TextOptions("w", "x", "y", "z"), CorrectAnswer: 2}
		g.shuffleOptions(&q)
		if q.Correct().Text != "y" {
			t.Fatalf("after shuffle correct = %q, want y", q.Correct().Text)
		}
	}
}

func TestQuestions_MetaOptionsNeverJudgedAsConfusion(t *testing.T) {
	g := newTestGenerator(15)
	j := judge.New(rand.New(rand.NewPCG(2, 2)), nil)

	check := func(q Question) {
		for i, o := range q.Options {
			if i == q.CorrectAnswer {
				continue
			}
			if o.Phoneme == "" && !o.NoPhoneme {
				t.Errorf("%s: option %q names no sound and is not marked NoPhoneme", q.ID, o.Text)
				continue
			}
			if !o.NoPhoneme {
				continue
			}
			if res := j.Evaluate(q.JudgeInput(i)); res.IsConfusionError {
				t.Errorf("%s: choosing %q judged as confusion with %s", q.ID, o.Text, res.ConfusedWith)
			}
		}
	}

	for _, p := range phoneme.All() {
		for _, level := range curriculum.Order() {
			for _, q := range g.Questions(p.ID, level) {
				check(q)
			}
		}
		for _, s := range p.SimilarSounds {
			ex, err := g.SimilarSoundsReview(p.Letter, s, 0)
			if err != nil {
				continue
			}
			for _, q := range ex.Questions {
				check(q)
			}
		}
	}
}
