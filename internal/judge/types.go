package judge

import "github.com/abhisek/makhraj/internal/curriculum"

const (
	// ConfusionThreshold is the minimum similarity for a wrong answer to
	// count as a confusion between two specific sounds.
	ConfusionThreshold = 0.3

	// RemedialThreshold is the minimum similarity for a confusion to call
	// for targeted practice of the similar pair.
	RemedialThreshold = 0.5
)

// ConfusionType names the feature two confused sounds share.
type ConfusionType string

const (
	ConfusionArticulation ConfusionType = "articulation"
	ConfusionVoicing      ConfusionType = "voicing"
	ConfusionEmphasis     ConfusionType = "emphasis"
	ConfusionOther        ConfusionType = "other"
)

// NextAction is the step the learner should take after an answer.
type NextAction string

const (
	ActionContinue        NextAction = "continue"
	ActionReview          NextAction = "review"
	ActionPracticeSimilar NextAction = "practice_similar"
	ActionRepeat          NextAction = "repeat"
)

// Option is one answer choice. Phoneme is the letter the option stands for;
// it may be empty for free-text options, in which case it is derived from
// Text. NoPhoneme marks self-assessment and meta answers ("لا أعرف") that
// stand for no sound at all.
type Option struct {
	Text      string `json:"text"`
	Phoneme   string `json:"phoneme,omitempty"`
	NoPhoneme bool   `json:"noPhoneme,omitempty"`
}

// TextOptions builds options without representative phonemes.
func TextOptions(texts ...string) []Option {
	out := make([]Option, len(texts))
	for i, t := range texts {
		out[i] = Option{Text: t}
	}
	return out
}

// MetaOptions builds options that stand for no sound. Choosing one is never
// judged as a confusion.
func MetaOptions(texts ...string) []Option {
	out := make([]Option, len(texts))
	for i, t := range texts {
		out[i] = Option{Text: t, NoPhoneme: true}
	}
	return out
}

// Input describes one answered multiple-choice question.
type Input struct {
	TargetSound string // letter of the sound being trained
	Selected    int
	Correct     int
	Options     []Option
	Level       curriculum.Level
	Position    curriculum.Position // empty when the level has no word position
}

// Feedback is the learner-facing explanation of a verdict.
type Feedback struct {
	Message       string
	Explanation   string
	Tip           string
	PracticeWords []string
}

// Result is the verdict for one answer.
type Result struct {
	IsCorrect        bool
	TargetSound      string
	SelectedSound    string // text of the chosen option; set only when wrong
	ExtractedSound   string // representative phoneme of the chosen option
	IsConfusionError bool
	ConfusedWith     string
	ConfusionType    ConfusionType
	SimilarityScore  float64
	PositionStruggle curriculum.Position
	Feedback         Feedback
	ShouldRepeat     bool
	NextAction       NextAction
}
