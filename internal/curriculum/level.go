package curriculum

// Level is one stage of the 12-step training ladder for a sound.
type Level string

const (
	Isolation      Level = "isolation"
	CV             Level = "cv"
	VC             Level = "vc"
	VCV            Level = "vcv"
	NonsenseWords  Level = "nonsense_words"
	RealWords      Level = "real_words"
	Phrases        Level = "phrases"
	Sentences      Level = "sentences"
	StoryRetelling Level = "story_retelling"
	StoryTelling   Level = "story_telling"
	Questions      Level = "questions"
	Spontaneous    Level = "spontaneous"
)

var order = []Level{
	Isolation,
	CV,
	VC,
	VCV,
	NonsenseWords,
	RealWords,
	Phrases,
	Sentences,
	StoryRetelling,
	StoryTelling,
	Questions,
	Spontaneous,
}

// Order returns all levels from easiest to hardest.
func Order() []Level {
	out := make([]Level, len(order))
	copy(out, order)
	return out
}

// First returns the entry level, the only one available by default.
func First() Level {
	return Isolation
}

// Index returns the position of l in the ladder, or -1 for an unknown level.
func Index(l Level) int {
	for i, o := range order {
		if o == l {
			return i
		}
	}
	return -1
}

// Next returns the level after l. The second return is false when l is the
// last level or unknown.
func Next(l Level) (Level, bool) {
	i := Index(l)
	if i < 0 || i+1 >= len(order) {
		return "", false
	}
	return order[i+1], true
}

// Valid reports whether l is one of the 12 levels.
func Valid(l Level) bool {
	return Index(l) >= 0
}

// IsFoundational reports whether l is one of the sub-word levels where a
// wrong answer calls for reviewing the isolated sound.
func IsFoundational(l Level) bool {
	return l == Isolation || l == CV || l == VC
}

// SupportsPositions reports whether exercises at l target a position in
// the word.
func SupportsPositions(l Level) bool {
	return l == RealWords || l == Phrases || l == Sentences
}

// DisplayName returns the Arabic name of a level.
func DisplayName(l Level) string {
	switch l {
	case Isolation:
		return "الصوت معزول"
	case CV:
		return "الصوت مع مد بعدي"
	case VC:
		return "الصوت مع مد قبلي"
	case VCV:
		return "الصوت مع مد قبلي وبعدي"
	case NonsenseWords:
		return "الكلمات غير المفهومة"
	case RealWords:
		return "الكلمات الحقيقية"
	case Phrases:
		return "العبارات"
	case Sentences:
		return "الجمل"
	case StoryRetelling:
		return "إعادة سرد القصص"
	case StoryTelling:
		return "سرد القصص"
	case Questions:
		return "الإجابة على الأسئلة"
	case Spontaneous:
		return "الكلام المسترسل"
	default:
		return string(l)
	}
}

// Difficulty grades an exercise by its level.
type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

// DifficultyOf returns the exercise difficulty for a level.
func DifficultyOf(l Level) Difficulty {
	switch l {
	case Isolation, CV, VC, VCV:
		return Beginner
	case NonsenseWords, RealWords, Phrases:
		return Intermediate
	default:
		return Advanced
	}
}
