package judge

import (
	"math"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/abhisek/makhraj/internal/content"
	"github.com/abhisek/makhraj/internal/curriculum"
)

func newTestJudge() *Judge {
	return New(rand.New(rand.NewPCG(1, 2)), content.Default())
}

func letterOptions(letters ...string) []Option {
	out := make([]Option, len(letters))
	for i, l := range letters {
		out[i] = Option{Text: l, Phoneme: l}
	}
	return out
}

func TestEvaluate_Correct(t *testing.T) {
	j := newTestJudge()
	res := j.Evaluate(Input{
		TargetSound: "ت",
		Selected:    0,
		Correct:     0,
		Options:     letterOptions("ت", "ط", "د"),
		Level:       curriculum.RealWords,
		Position:    curriculum.Initial,
	})
	if !res.IsCorrect {
		t.Fatal("expected correct")
	}
	if res.NextAction != ActionContinue {
		t.Errorf("NextAction = %q, want %q", res.NextAction, ActionContinue)
	}
	if res.ShouldRepeat {
		t.Error("ShouldRepeat = true, want false")
	}
	if res.SelectedSound != "" || res.PositionStruggle != "" {
		t.Errorf("correct answer should not record selection/position, got %q/%q", res.SelectedSound, res.PositionStruggle)
	}
	if !slices.Contains(Affirmations(), res.Feedback.Message) {
		t.Errorf("Message %q not in affirmation pool", res.Feedback.Message)
	}
	if res.Feedback.Tip != "" {
		t.Errorf("Tip = %q, want empty outside isolation", res.Feedback.Tip)
	}
}

func TestEvaluate_CorrectIsolationAddsTip(t *testing.T) {
	j := newTestJudge()
	res := j.Evaluate(Input{
		TargetSound: "ب",
		Options:     letterOptions("ب", "م"),
		Level:       curriculum.Isolation,
	})
	if !strings.Contains(res.Feedback.Tip, "انطباق الشفتين") {
		t.Errorf("Tip = %q, want articulation reminder", res.Feedback.Tip)
	}
}

func TestEvaluate_SeededIsReproducible(t *testing.T) {
	in := Input{TargetSound: "ب", Options: letterOptions("ب", "م"), Level: curriculum.CV}
	a := New(rand.New(rand.NewPCG(7, 7)), nil)
	b := New(rand.New(rand.NewPCG(7, 7)), nil)
	for i := 0; i < 10; i++ {
		ma := a.Evaluate(in).Feedback.Message
		mb := b.Evaluate(in).Feedback.Message
		if ma != mb {
			t.Fatalf("run %d: %q != %q with same seed", i, ma, mb)
		}
	}
}

func TestEvaluate_EmphaticConfusion(t *testing.T) {
	j := newTestJudge()
	res := j.Evaluate(Input{
		TargetSound: "ت",
		Selected:    1,
		Correct:     0,
		Options:     letterOptions("ت", "ط", "د", "ث"),
		Level:       curriculum.RealWords,
		Position:    curriculum.Initial,
	})
	if res.IsCorrect {
		t.Fatal("expected wrong")
	}
	if !res.IsConfusionError {
		t.Fatal("expected confusion error")
	}
	if res.ConfusedWith != "ط" {
		t.Errorf("ConfusedWith = %q, want ط", res.ConfusedWith)
	}
	// Same articulation point outranks the emphatic pair.
	if res.ConfusionType != ConfusionArticulation {
		t.Errorf("ConfusionType = %q, want %q", res.ConfusionType, ConfusionArticulation)
	}
	if math.Abs(res.SimilarityScore-0.9) > 1e-9 {
		t.Errorf("SimilarityScore = %v, want 0.9", res.SimilarityScore)
	}
	if res.NextAction != ActionPracticeSimilar || !res.ShouldRepeat {
		t.Errorf("NextAction = %q ShouldRepeat = %v, want practice_similar/true", res.NextAction, res.ShouldRepeat)
	}
	if res.PositionStruggle != curriculum.Initial {
		t.Errorf("PositionStruggle = %q, want initial", res.PositionStruggle)
	}
	if res.SelectedSound != "ط" {
		t.Errorf("SelectedSound = %q, want ط", res.SelectedSound)
	}
	if len(res.Feedback.PracticeWords) != 3 {
		t.Errorf("PracticeWords = %v, want 3 words", res.Feedback.PracticeWords)
	}
	if res.Feedback.Tip == "" || res.Feedback.Explanation == "" {
		t.Error("confusion feedback should carry an explanation and a tip")
	}
}

func TestEvaluate_LowSimilarityAtIsolation(t *testing.T) {
	j := newTestJudge()
	res := j.Evaluate(Input{
		TargetSound: "ب",
		Selected:    1,
		Correct:     0,
		Options:     TextOptions("ب", "ق"),
		Level:       curriculum.Isolation,
	})
	if res.IsConfusionError {
		t.Error("ب/ق should not be a confusion")
	}
	if res.SimilarityScore != 0 {
		t.Errorf("SimilarityScore = %v, want 0", res.SimilarityScore)
	}
	if res.NextAction != ActionReview || !res.ShouldRepeat {
		t.Errorf("NextAction = %q ShouldRepeat = %v, want review/true", res.NextAction, res.ShouldRepeat)
	}
	if len(res.Feedback.PracticeWords) != 2 {
		t.Errorf("PracticeWords = %v, want 2 words", res.Feedback.PracticeWords)
	}
	if !strings.Contains(res.Feedback.Message, "ب") {
		t.Errorf("Message = %q, want it to name the correct sound", res.Feedback.Message)
	}
}

func TestEvaluate_UnknownTarget(t *testing.T) {
	j := newTestJudge()
	res := j.Evaluate(Input{
		TargetSound: "x",
		Selected:    1,
		Correct:     0,
		Options:     letterOptions("x", "ب"),
		Level:       curriculum.RealWords,
	})
	if res.IsConfusionError {
		t.Error("unknown target shares no features and cannot be a confusion")
	}
	if res.NextAction != ActionRepeat || res.ShouldRepeat {
		t.Errorf("NextAction = %q ShouldRepeat = %v, want repeat/false", res.NextAction, res.ShouldRepeat)
	}
	if res.Feedback.Message == "" {
		t.Error("expected generic feedback")
	}
}

func TestEvaluate_VoicingAcrossPoints(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		selected string
		level    curriculum.Level
		wantType ConfusionType
		wantNext NextAction
	}{
		{"ب/ف practice", "ب", "ف", curriculum.RealWords, ConfusionVoicing, ActionPracticeSimilar},
		{"ض/ص below remedial at real words", "ض", "ص", curriculum.RealWords, ConfusionVoicing, ActionRepeat},
		{"ض/ص below remedial at cv", "ض", "ص", curriculum.CV, ConfusionVoicing, ActionReview},
	}
	j := newTestJudge()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := j.Evaluate(Input{
				TargetSound: tt.target,
				Selected:    1,
				Correct:     0,
				Options:     letterOptions(tt.target, tt.selected),
				Level:       tt.level,
			})
			if !res.IsConfusionError {
				t.Fatal("expected confusion")
			}
			if res.ConfusionType != tt.wantType {
				t.Errorf("ConfusionType = %q, want %q", res.ConfusionType, tt.wantType)
			}
			if res.NextAction != tt.wantNext {
				t.Errorf("NextAction = %q, want %q", res.NextAction, tt.wantNext)
			}
		})
	}
}

func TestEvaluate_AdjacencyOnlyIsNotConfusion(t *testing.T) {
	j := newTestJudge()
	res := j.Evaluate(Input{
		TargetSound: "ح",
		Selected:    1,
		Options:     letterOptions("ح", "خ"),
		Level:       curriculum.Phrases,
	})
	if res.IsConfusionError {
		t.Error("ح/خ share only adjacency and should not be a confusion")
	}
	if math.Abs(res.SimilarityScore-0.2) > 1e-9 {
		t.Errorf("SimilarityScore = %v, want 0.2", res.SimilarityScore)
	}
}

func TestEvaluate_OutOfRangeSelection(t *testing.T) {
	j := newTestJudge()
	res := j.Evaluate(Input{
		TargetSound: "ت",
		Selected:    9,
		Options:     letterOptions("ت", "ط"),
		Level:       curriculum.VCV,
	})
	if res.IsCorrect || res.IsConfusionError {
		t.Errorf("got correct=%v confusion=%v, want both false", res.IsCorrect, res.IsConfusionError)
	}
	if res.SelectedSound != "" {
		t.Errorf("SelectedSound = %q, want empty", res.SelectedSound)
	}
}

func TestEvaluate_LegacyTextOption(t *testing.T) {
	j := newTestJudge()
	res := j.Evaluate(Input{
		TargetSound: "ت",
		Selected:    1,
		Options:     TextOptions("تا", "طا"),
		Level:       curriculum.CV,
	})
	if res.ConfusedWith != "ط" {
		t.Errorf("ConfusedWith = %q, want ط from text scan", res.ConfusedWith)
	}
}

func TestEvaluate_NilWordSource(t *testing.T) {
	j := New(rand.New(rand.NewPCG(1, 1)), nil)
	res := j.Evaluate(Input{
		TargetSound: "ت",
		Selected:    1,
		Options:     letterOptions("ت", "ط"),
		Level:       curriculum.RealWords,
	})
	if res.Feedback.PracticeWords != nil {
		t.Errorf("PracticeWords = %v, want nil without a word source", res.Feedback.PracticeWords)
	}
}

func TestEvaluate_MetaOptionIsNotConfusion(t *testing.T) {
	j := newTestJudge()
	opts := append(TextOptions("حمام"), MetaOptions("لا أعرف", "أحتاج تكرار السؤال")...)
	res := j.Evaluate(Input{
		TargetSound: "ح",
		Selected:    1,
		Correct:     0,
		Options:     opts,
		Level:       curriculum.Questions,
	})
	if res.IsCorrect {
		t.Fatal("expected wrong answer")
	}
	if res.IsConfusionError || res.ConfusedWith != "" {
		t.Errorf("meta option judged as confusion with %q", res.ConfusedWith)
	}
	if res.NextAction != ActionRepeat {
		t.Errorf("NextAction = %q, want %q", res.NextAction, ActionRepeat)
	}
}
