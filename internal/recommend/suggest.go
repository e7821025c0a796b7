package recommend

import (
	"fmt"

	"github.com/abhisek/makhraj/internal/curriculum"
	"github.com/abhisek/makhraj/internal/mastery"
	"github.com/abhisek/makhraj/internal/phoneme"
)

// Suggestion thresholds.
const (
	SuggestReviewBelow       = 40
	SuggestExcellentFrom     = 80
	SuggestMinPositionErrors = 2
	SuggestMinConfusionCount = 2
)

// SuggestionPriority grades how pressing a suggestion is.
type SuggestionPriority string

const (
	High   SuggestionPriority = "high"
	Medium SuggestionPriority = "medium"
	Low    SuggestionPriority = "low"
)

// RecentResult is one recent answer on the current sound.
type RecentResult struct {
	Correct  bool
	Level    curriculum.Level
	Position curriculum.Position
}

// Suggestion is the next exercise to try and why.
type Suggestion struct {
	SoundID  string              `json:"soundId"`
	Level    curriculum.Level    `json:"level"`
	Position curriculum.Position `json:"position,omitempty"`
	Reason   string              `json:"reason"`
	Priority SuggestionPriority  `json:"priority"`
}

// SuggestNextExercise picks a follow-up from the learner's recent answers
// on one sound and that sound's confusion matrix. An unknown sound restarts
// from the first sound at isolation.
func SuggestNextExercise(letter string, recent []RecentResult, confusion map[string]int) Suggestion {
	p, ok := phoneme.Resolve(letter)
	if !ok {
		first := phoneme.All()[0]
		return Suggestion{SoundID: first.ID, Level: curriculum.First(), Reason: "ابدأ من البداية", Priority: Medium}
	}

	correct := 0
	for _, r := range recent {
		if r.Correct {
			correct++
		}
	}
	accuracy := 0
	if len(recent) > 0 {
		accuracy = correct * 100 / len(recent)
	}

	if accuracy < SuggestReviewBelow {
		return Suggestion{SoundID: p.ID, Level: curriculum.Isolation, Reason: "تحتاج مراجعة أساسيات الصوت", Priority: High}
	}

	if partner, _ := mostConfused(confusion, SuggestMinConfusionCount); partner != "" {
		return Suggestion{
			SoundID:  p.ID,
			Level:    curriculum.Isolation,
			Reason:   fmt.Sprintf("تدرب على التمييز بين %s و %s", p.Letter, partner),
			Priority: High,
		}
	}

	posErrors := make(map[curriculum.Position]int)
	for _, r := range recent {
		if !r.Correct && curriculum.ValidPosition(r.Position) {
			posErrors[r.Position]++
		}
	}
	var weak curriculum.Position
	weakN := 0
	for _, pos := range curriculum.AllPositions() {
		if n := posErrors[pos]; n >= SuggestMinPositionErrors && n > weakN {
			weak, weakN = pos, n
		}
	}
	if weak != "" {
		return Suggestion{
			SoundID:  p.ID,
			Level:    curriculum.RealWords,
			Position: weak,
			Reason:   fmt.Sprintf("تعزيز الصوت في %s", curriculum.PositionName(weak)),
			Priority: Medium,
		}
	}

	current := curriculum.First()
	if len(recent) > 0 && curriculum.Valid(recent[len(recent)-1].Level) {
		current = recent[len(recent)-1].Level
	}
	next, ok := curriculum.Next(current)
	if !ok {
		next = current
	}
	reason := "استمر في التدريب"
	if accuracy >= SuggestExcellentFrom {
		reason = "أداء ممتاز! انتقل للمستوى التالي"
	}
	return Suggestion{SoundID: p.ID, Level: next, Reason: reason, Priority: Low}
}

// NextExercise returns the level and, when useful, the word position to
// practise next for one sound. Nil progress starts at the first level.
func NextExercise(sp *mastery.SoundProgress) (curriculum.Level, curriculum.Position) {
	if sp == nil {
		return curriculum.First(), ""
	}
	if len(sp.WeakPositions) > 0 && curriculum.SupportsPositions(sp.CurrentLevel) {
		return sp.CurrentLevel, sp.WeakPositions[0]
	}
	if lp := sp.Levels[sp.CurrentLevel]; lp != nil && lp.Status == mastery.StatusMastered {
		if next, ok := curriculum.Next(sp.CurrentLevel); ok {
			return next, ""
		}
	}
	return sp.CurrentLevel, ""
}
