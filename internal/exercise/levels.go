package exercise

import (
	"fmt"
	"strings"

	"github.com/abhisek/makhraj/internal/content"
	"github.com/abhisek/makhraj/internal/curriculum"
	"github.com/abhisek/makhraj/internal/judge"
	"github.com/abhisek/makhraj/internal/phoneme"
)

// Self-assessment options for the open speaking levels.
var (
	storyTellingOptions = []string{"أكملت السرد بنجاح", "أحتاج المزيد من الوقت", "أريد موضوعاً آخر", "لم أستطع"}
	answerOptions       = []string{"لا أعرف", "أحتاج تكرار السؤال", "السؤال غير واضح"}
	spontaneousOptions  = []string{"تحدثت بطلاقة", "واجهت بعض الصعوبات", "أحتاج المزيد من التدريب", "لم أستطع"}
)

// builder produces the unshuffled questions for one sound. The correct
// option is always first.
type builder struct {
	p       phoneme.Phoneme
	similar []string
	ex      content.Examples

	// fixedOrder marks questions whose options keep their authored order.
	fixedOrder map[string]bool
}

func (b *builder) id(level curriculum.Level, suffix any) string {
	return fmt.Sprintf("%s-%s-%v", b.p.ID, level, suffix)
}

// letters turns letters into options that stand for themselves.
func letters(ls ...string) []judge.Option {
	out := make([]judge.Option, len(ls))
	for i, l := range ls {
		out[i] = judge.Option{Text: l, Phoneme: l}
	}
	return out
}

// carrying builds options that all carry the target sound.
func (b *builder) carrying(texts ...string) []judge.Option {
	out := make([]judge.Option, len(texts))
	for i, t := range texts {
		out[i] = judge.Option{Text: t, Phoneme: b.p.Letter}
	}
	return out
}

// swapped replaces the first occurrence of the target letter with its
// closest similar sound, producing a minimal-pair distractor.
func (b *builder) swapped(text string) (judge.Option, bool) {
	if len(b.similar) == 0 || !strings.Contains(text, b.p.Letter) {
		return judge.Option{}, false
	}
	s := b.similar[0]
	return judge.Option{Text: strings.Replace(text, b.p.Letter, s, 1), Phoneme: s}, true
}

func firstN(xs []string, n int) []string {
	if len(xs) > n {
		return xs[:n]
	}
	return xs
}

func without(xs []string, skip string) []string {
	out := make([]string, 0, len(xs))
	for _, x := range xs {
		if x != skip {
			out = append(out, x)
		}
	}
	return out
}

func capOptions(opts []judge.Option) []judge.Option {
	if len(opts) > 4 {
		return opts[:4]
	}
	return opts
}

func (b *builder) isolation() []Question {
	p := b.p
	distractors := firstN(b.similar, 3)
	qs := []Question{{
		ID:               b.id(curriculum.Isolation, 1),
		TargetSound:      p.Letter,
		Level:            curriculum.Isolation,
		Prompt:           "استمع للصوت وحدد الحرف الصحيح",
		Audio:            p.Letter,
		AudioDescription: fmt.Sprintf("صوت الحرف %s معزولاً", p.Letter),
		Options:          letters(append([]string{p.Letter}, distractors...)...),
		DistractorSounds: distractors,
		Hint:             p.TrainingTip,
		Explanation:      fmt.Sprintf("هذا صوت %s، مخرجه: %s", p.Name, p.ArticulationDescription),
	}}

	// Answering "no" to the target's own audio counts as hearing its closest
	// similar sound.
	yesNo := Question{
		ID:               b.id(curriculum.Isolation, 2),
		TargetSound:      p.Letter,
		Level:            curriculum.Isolation,
		Prompt:           fmt.Sprintf("هل الصوت الذي سمعته هو صوت %s؟", p.Letter),
		Audio:            p.Letter,
		AudioDescription: fmt.Sprintf("صوت الحرف %s", p.Letter),
		Options:          []judge.Option{{Text: "نعم", Phoneme: p.Letter}, {Text: "لا", NoPhoneme: true}},
		Hint:             fmt.Sprintf("ركز على مخرج الصوت: %s", p.ArticulationDescription),
		Explanation:      fmt.Sprintf("صحيح! هذا صوت %s", p.Name),
	}
	if len(b.similar) > 0 {
		yesNo.Options[1] = judge.Option{Text: "لا", Phoneme: b.similar[0]}
	}
	qs = append(qs, yesNo)
	b.fix(yesNo.ID)

	if len(b.similar) > 0 {
		s := b.similar[0]
		qs = append(qs, Question{
			ID:               b.id(curriculum.Isolation, 3),
			TargetSound:      p.Letter,
			Level:            curriculum.Isolation,
			Prompt:           fmt.Sprintf("ما الفرق بين صوت %s وصوت %s؟", p.Letter, s),
			Audio:            p.Letter + " " + s,
			AudioDescription: fmt.Sprintf("مقارنة بين %s و %s", p.Letter, s),
			Options: []judge.Option{
				{Text: fmt.Sprintf("%s من %s", p.Letter, p.ArticulationDescription), Phoneme: p.Letter},
				{Text: fmt.Sprintf("%s و %s متطابقان", p.Letter, s), Phoneme: s},
				{Text: "لا يوجد فرق", Phoneme: s},
				{Text: fmt.Sprintf("%s أقوى", s), Phoneme: s},
			},
			DistractorSounds: []string{s},
			Hint:             "ركز على مخرج كل صوت",
			Explanation:      fmt.Sprintf("%s مخرجه %s", p.Letter, p.ArticulationDescription),
		})
	}
	return qs
}

func (b *builder) fix(id string) {
	if b.fixedOrder == nil {
		b.fixedOrder = make(map[string]bool)
	}
	b.fixedOrder[id] = true
}

func (b *builder) cv() []Question {
	p := b.p
	cvs := content.CV(p.Letter)
	distractors := firstN(b.similar, 2)
	qs := make([]Question, 0, len(cvs))
	for i, cv := range cvs {
		vowel := strings.TrimPrefix(cv, p.Letter)
		opts := []judge.Option{{Text: cv, Phoneme: p.Letter}}
		for _, s := range distractors {
			opts = append(opts, judge.Option{Text: s + vowel, Phoneme: s})
		}
		opts = append(opts, judge.Option{Text: cvs[(i+1)%len(cvs)], Phoneme: p.Letter})
		qs = append(qs, Question{
			ID:               b.id(curriculum.CV, i+1),
			TargetSound:      p.Letter,
			Level:            curriculum.CV,
			Prompt:           "استمع واختر المقطع الصحيح",
			Audio:            cv,
			AudioDescription: fmt.Sprintf("المقطع %s", cv),
			Options:          capOptions(opts),
			DistractorSounds: distractors,
			Hint:             fmt.Sprintf("المقطع يبدأ بصوت %s", p.Letter),
			Explanation:      fmt.Sprintf("المقطع %s يتكون من %s مع مد", cv, p.Letter),
		})
	}
	return qs
}

func (b *builder) vc() []Question {
	p := b.p
	vcs := content.VC(p.Letter)
	distractors := firstN(b.similar, 2)
	qs := make([]Question, 0, len(vcs))
	for i, vc := range vcs {
		vowel := strings.TrimSuffix(vc, p.Letter)
		opts := []judge.Option{{Text: vc, Phoneme: p.Letter}}
		for _, s := range distractors {
			opts = append(opts, judge.Option{Text: vowel + s, Phoneme: s})
		}
		qs = append(qs, Question{
			ID:               b.id(curriculum.VC, i+1),
			TargetSound:      p.Letter,
			Level:            curriculum.VC,
			Prompt:           "استمع واختر المقطع الصحيح",
			Audio:            vc,
			AudioDescription: fmt.Sprintf("المقطع %s", vc),
			Options:          capOptions(opts),
			DistractorSounds: distractors,
			Hint:             fmt.Sprintf("المقطع ينتهي بصوت %s", p.Letter),
			Explanation:      fmt.Sprintf("المقطع %s ينتهي بصوت %s", vc, p.Name),
		})
	}
	return qs
}

func (b *builder) vcv() []Question {
	p := b.p
	var all []string
	for _, row := range content.VCV(p.Letter) {
		all = append(all, row...)
	}
	all = firstN(all, 6)
	qs := make([]Question, 0, len(all))
	for i, v := range all {
		opts := b.carrying(append([]string{v}, firstN(without(all, v), 3)...)...)
		qs = append(qs, Question{
			ID:               b.id(curriculum.VCV, i+1),
			TargetSound:      p.Letter,
			Level:            curriculum.VCV,
			Prompt:           "استمع واختر المقطع الصحيح",
			Audio:            v,
			AudioDescription: fmt.Sprintf("المقطع %s", v),
			Options:          opts,
			Hint:             fmt.Sprintf("المقطع يحتوي على صوت %s في الوسط", p.Letter),
			Explanation:      fmt.Sprintf("المقطع %s يحتوي على %s بين مدين", v, p.Name),
		})
	}
	return qs
}

func (b *builder) nonsenseWords() []Question {
	p := b.p
	words := b.ex.NonsenseWords
	qs := make([]Question, 0, len(words))
	for i, w := range words {
		opts := b.carrying(append([]string{w}, firstN(without(words, w), 2)...)...)
		if sw, ok := b.swapped(w); ok {
			opts = append(opts, sw)
		} else {
			opts = append(opts, judge.Option{Text: w + "ا", Phoneme: p.Letter})
		}
		qs = append(qs, Question{
			ID:               b.id(curriculum.NonsenseWords, i+1),
			TargetSound:      p.Letter,
			Level:            curriculum.NonsenseWords,
			Prompt:           "استمع واختر الكلمة الصحيحة",
			Audio:            w,
			AudioDescription: fmt.Sprintf("الكلمة %s", w),
			Options:          capOptions(opts),
			DistractorSounds: firstN(b.similar, 1),
			Hint:             fmt.Sprintf("الكلمة تحتوي على صوت %s", p.Letter),
			Explanation:      fmt.Sprintf("الكلمة %s تحتوي على صوت %s", w, p.Name),
		})
	}
	return qs
}

// realWords builds up to two items per position and syllable bucket. The
// first distractor is a minimal pair when the sound has a similar sound.
func (b *builder) realWords() []Question {
	p := b.p
	var qs []Question
	for _, pos := range curriculum.AllPositions() {
		pool := b.ex.AllWords(pos)
		for _, syl := range curriculum.AllSyllableCounts() {
			for i, w := range firstN(b.ex.Words(pos, syl), 2) {
				opts := b.carrying(w)
				if sw, ok := b.swapped(w); ok {
					opts = append(opts, sw)
				}
				opts = append(opts, b.carrying(firstN(without(pool, w), 3)...)...)
				qs = append(qs, Question{
					ID:               b.id(curriculum.RealWords, fmt.Sprintf("%s-%s-%d", pos, syl, i+1)),
					TargetSound:      p.Letter,
					Level:            curriculum.RealWords,
					Position:         pos,
					SyllableCount:    syl,
					Prompt:           "استمع واختر الكلمة الصحيحة",
					Audio:            w,
					AudioDescription: fmt.Sprintf("الكلمة %s", w),
					Options:          capOptions(opts),
					Hint:             fmt.Sprintf("الكلمة تحتوي على صوت %s في %s", p.Letter, curriculum.PositionName(pos)),
					Explanation:      fmt.Sprintf("الكلمة %s - صوت %s في %s", w, p.Name, curriculum.PositionName(pos)),
				})
			}
		}
	}
	return qs
}

func (b *builder) phrases() []Question {
	p := b.p
	phrases := b.ex.Phrases
	var qs []Question
	for i, ph := range firstN(phrases, 4) {
		qs = append(qs, Question{
			ID:               b.id(curriculum.Phrases, i+1),
			TargetSound:      p.Letter,
			Level:            curriculum.Phrases,
			Prompt:           "استمع واختر العبارة الصحيحة",
			Audio:            ph,
			AudioDescription: fmt.Sprintf("العبارة: %s", ph),
			Options:          b.carrying(append([]string{ph}, firstN(without(phrases, ph), 3)...)...),
			Hint:             fmt.Sprintf("العبارة تحتوي على كلمات بها صوت %s", p.Letter),
			Explanation:      fmt.Sprintf("العبارة الصحيحة: %s", ph),
		})
	}

	if len(phrases) > 0 {
		ph := phrases[0]
		count := strings.Count(ph, p.Letter)
		fewer := max(count-1, 1)
		qs = append(qs, Question{
			ID:               b.id(curriculum.Phrases, "count"),
			TargetSound:      p.Letter,
			Level:            curriculum.Phrases,
			Prompt:           fmt.Sprintf("كم مرة سمعت صوت %s في العبارة؟", p.Letter),
			Audio:            ph,
			AudioDescription: fmt.Sprintf("العبارة: %s", ph),
			Options: judge.MetaOptions(
				fmt.Sprintf("%d مرات", count),
				fmt.Sprintf("%d مرات", count+1),
				fmt.Sprintf("%d مرة", fewer),
				fmt.Sprintf("%d مرات", count+2),
			),
			Hint:        "استمع بتركيز لكل كلمة",
			Explanation: fmt.Sprintf("صوت %s يظهر %d مرات في العبارة", p.Letter, count),
		})
	}
	return qs
}

func (b *builder) sentences() []Question {
	p := b.p
	sentences := b.ex.Sentences
	var qs []Question
	for i, s := range firstN(sentences, 4) {
		opts := b.carrying(s)
		if sw, ok := b.swapped(s); ok {
			opts = append(opts, sw)
		}
		opts = append(opts, b.carrying(firstN(without(sentences, s), 3)...)...)
		qs = append(qs, Question{
			ID:               b.id(curriculum.Sentences, i+1),
			TargetSound:      p.Letter,
			Level:            curriculum.Sentences,
			Prompt:           "استمع واختر الجملة الصحيحة",
			Audio:            s,
			AudioDescription: fmt.Sprintf("الجملة: %s", s),
			Options:          capOptions(opts),
			Hint:             fmt.Sprintf("الجملة تحتوي على عدة كلمات بها صوت %s", p.Letter),
			Explanation:      fmt.Sprintf("الجملة الصحيحة: %s", s),
		})
	}
	return qs
}

func (b *builder) storyRetelling() []Question {
	p := b.p
	story := b.ex.Story
	if story == "" {
		return nil
	}
	var qs []Question

	var carriers []string
	for _, w := range strings.Fields(story) {
		if strings.Contains(w, p.Letter) {
			carriers = append(carriers, w)
		}
	}
	if len(carriers) >= 2 {
		w := carriers[0]
		alt, ok := b.swapped(w)
		if !ok {
			alt = judge.Option{Text: strings.Replace(w, p.Letter, "ا", 1), NoPhoneme: true}
		}
		qs = append(qs, Question{
			ID:               b.id(curriculum.StoryRetelling, 1),
			TargetSound:      p.Letter,
			Level:            curriculum.StoryRetelling,
			Prompt:           "استمع للقصة ثم اختر الكلمة التي سمعتها",
			Audio:            story,
			AudioDescription: fmt.Sprintf("القصة: %s", story),
			Options:          append([]judge.Option{{Text: w, Phoneme: p.Letter}, alt}, judge.MetaOptions("لم أسمعها", "غير متأكد")...),
			Hint:             fmt.Sprintf("ركز على الكلمات التي تحتوي على صوت %s", p.Letter),
			Explanation:      fmt.Sprintf("الكلمة %s وردت في القصة", w),
		})
	}

	qs = append(qs, Question{
		ID:               b.id(curriculum.StoryRetelling, 2),
		TargetSound:      p.Letter,
		Level:            curriculum.StoryRetelling,
		Prompt:           "ما الصوت الذي تكرر كثيراً في القصة؟",
		Audio:            story,
		AudioDescription: fmt.Sprintf("القصة: %s", story),
		Options:          letters(append([]string{p.Letter}, firstN(b.similar, 3)...)...),
		DistractorSounds: firstN(b.similar, 3),
		Hint:             "استمع للصوت المتكرر",
		Explanation:      fmt.Sprintf("صوت %s هو الصوت المستهدف في هذه القصة", p.Name),
	})
	return qs
}

func (b *builder) storyTelling() []Question {
	p := b.p
	if b.ex.StoryPrompt == "" {
		return nil
	}
	q := Question{
		ID:               b.id(curriculum.StoryTelling, 1),
		TargetSound:      p.Letter,
		Level:            curriculum.StoryTelling,
		Prompt:           fmt.Sprintf("اسرد قصة قصيرة تحتوي على كلمات بها صوت %s", p.Letter),
		Audio:            b.ex.StoryPrompt,
		AudioDescription: fmt.Sprintf("موضوع القصة: %s", b.ex.StoryPrompt),
		Options:          judge.MetaOptions(storyTellingOptions...),
		Hint:             fmt.Sprintf("استخدم كلمات مثل: %s", strings.Join(firstN(b.ex.Words(curriculum.Initial, curriculum.Bi), 3), "، ")),
		Explanation:      fmt.Sprintf("أحسنت! حاول استخدام المزيد من الكلمات التي تحتوي على %s", p.Letter),
	}
	b.fix(q.ID)
	return []Question{q}
}

func (b *builder) questions() []Question {
	p := b.p
	qs := make([]Question, 0, len(b.ex.Questions))
	for i, qa := range b.ex.Questions {
		qs = append(qs, Question{
			ID:               b.id(curriculum.Questions, i+1),
			TargetSound:      p.Letter,
			Level:            curriculum.Questions,
			Prompt:           qa.Question,
			Audio:            qa.Question,
			AudioDescription: fmt.Sprintf("سؤال: %s", qa.Question),
			Options:          append(b.carrying(qa.Answer), judge.MetaOptions(answerOptions...)...),
			Hint:             fmt.Sprintf("الإجابة تحتوي على صوت %s", p.Letter),
			Explanation:      fmt.Sprintf("الإجابة الصحيحة: %s", qa.Answer),
		})
	}
	return qs
}

func (b *builder) spontaneous() []Question {
	p := b.p
	if b.ex.SpontaneousPrompt == "" {
		return nil
	}
	q := Question{
		ID:               b.id(curriculum.Spontaneous, 1),
		TargetSound:      p.Letter,
		Level:            curriculum.Spontaneous,
		Prompt:           b.ex.SpontaneousPrompt,
		Audio:            b.ex.SpontaneousPrompt,
		AudioDescription: fmt.Sprintf("موضوع المحادثة: %s", b.ex.SpontaneousPrompt),
		Options:          judge.MetaOptions(spontaneousOptions...),
		Hint:             fmt.Sprintf("حاول استخدام كلمات متنوعة تحتوي على صوت %s", p.Letter),
		Explanation:      "استمر في التدريب! كل محادثة تساعدك على التحسن",
	}
	b.fix(q.ID)
	return []Question{q}
}
