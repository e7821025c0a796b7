package judge

import (
	"fmt"

	"github.com/abhisek/makhraj/internal/curriculum"
	"github.com/abhisek/makhraj/internal/phoneme"
)

// Practice word counts attached to error feedback.
const (
	confusionPracticeWords = 3
	genericPracticeWords   = 2
)

var affirmations = []string{
	"ممتاز! إجابة صحيحة",
	"أحسنت! استمر هكذا",
	"رائع! سمعك دقيق",
	"عمل جيد! أنت تتقدم",
	"بارك الله فيك! إجابة موفقة",
}

// Affirmations returns the pool of messages used for correct answers.
func Affirmations() []string {
	out := make([]string, len(affirmations))
	copy(out, affirmations)
	return out
}

func (j *Judge) feedback(res *Result, level curriculum.Level) Feedback {
	target, targetKnown := phoneme.ByLetter(res.TargetSound)

	if res.IsCorrect {
		fb := Feedback{Message: affirmations[j.rng.IntN(len(affirmations))]}
		if level == curriculum.Isolation && targetKnown {
			fb.Tip = fmt.Sprintf("تذكر: صوت %s مخرجه %s", target.Letter, target.ArticulationDescription)
		}
		return fb
	}

	if !targetKnown || res.ExtractedSound == "" {
		fb := Feedback{
			Message:     "إجابة خاطئة، حاول مرة أخرى",
			Explanation: fmt.Sprintf("الصوت الصحيح هو %s", res.TargetSound),
		}
		if targetKnown {
			fb.Tip = target.TrainingTip
		}
		return fb
	}

	if res.IsConfusionError {
		return Feedback{
			Message:       fmt.Sprintf("اخترت صوت %s بدلاً من %s", res.ConfusedWith, target.Letter),
			Explanation:   confusionExplanation(res.ConfusionType, target.Letter, res.ConfusedWith),
			Tip:           remedialTip(target, res.ConfusedWith),
			PracticeWords: j.practiceWords(target.ID, curriculum.Bi, confusionPracticeWords),
		}
	}

	return Feedback{
		Message:       fmt.Sprintf("الصوت الصحيح هو %s (%s)", target.Letter, target.Name),
		Explanation:   fmt.Sprintf("اخترت %s، وهو صوت مختلف عن %s", res.SelectedSound, target.Letter),
		Tip:           fmt.Sprintf("مخرج %s: %s", target.Letter, target.ArticulationDescription),
		PracticeWords: j.practiceWords(target.ID, curriculum.Mono, genericPracticeWords),
	}
}

func (j *Judge) practiceWords(soundID string, syl curriculum.SyllableCount, n int) []string {
	if j.words == nil {
		return nil
	}
	return j.words.PracticeWords(soundID, syl, n)
}

func confusionExplanation(ct ConfusionType, target, selected string) string {
	switch ct {
	case ConfusionArticulation:
		p, _ := phoneme.ByLetter(target)
		return fmt.Sprintf("الصوتان %s و%s يخرجان من المخرج نفسه (%s)، والفرق بينهما دقيق",
			target, selected, phoneme.ArticulationPointName(p.ArticulationPoint))
	case ConfusionVoicing:
		voiced, voiceless := orderBy(target, selected, phoneme.Phoneme.IsVoiced)
		return fmt.Sprintf("الصوت %s مجهور تهتز معه الأحبال الصوتية، أما %s فمهموس", voiced, voiceless)
	case ConfusionEmphasis:
		emphatic, plain := orderBy(target, selected, phoneme.Phoneme.IsEmphatic)
		return fmt.Sprintf("الصوت %s مفخم يمتلئ به الفم، أما %s فمرقق", emphatic, plain)
	default:
		return fmt.Sprintf("الصوتان %s و%s متقاربان في السمع", target, selected)
	}
}

// orderBy returns (a, b) when a has the feature, otherwise (b, a).
func orderBy(a, b string, has func(phoneme.Phoneme) bool) (string, string) {
	if p, ok := phoneme.ByLetter(a); ok && has(p) {
		return a, b
	}
	return b, a
}

func remedialTip(target phoneme.Phoneme, selected string) string {
	if target.TrainingTip != "" {
		return target.TrainingTip
	}
	other, ok := phoneme.ByLetter(selected)
	if !ok {
		return fmt.Sprintf("مخرج %s: %s", target.Letter, target.ArticulationDescription)
	}
	return fmt.Sprintf("انتبه: %s مخرجه %s، أما %s فمخرجه %s",
		target.Letter, target.ArticulationDescription, other.Letter, other.ArticulationDescription)
}
