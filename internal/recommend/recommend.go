// Package recommend turns recorded progress into ordered practice advice.
package recommend

import (
	"fmt"
	"math"
	"sort"

	"github.com/abhisek/makhraj/internal/curriculum"
	"github.com/abhisek/makhraj/internal/mastery"
	"github.com/abhisek/makhraj/internal/phoneme"
)

// Rule thresholds.
const (
	ReviewAccuracyBelow  = 50
	ReviewMinAttempts    = 3
	ConfusionRepeatCount = 2
)

// Type names the kind of advice.
type Type string

const (
	ReviewArticulation  Type = "review_articulation"
	PracticePosition    Type = "practice_position"
	ReviewSimilarSounds Type = "review_similar_sounds"
	AdvanceLevel        Type = "advance_level"
)

// Priorities. Lower is more urgent.
const (
	PriorityUrgent  = 1
	PriorityNormal  = 2
	PriorityAdvance = 3
)

// Recommendation is one piece of advice for one sound.
type Recommendation struct {
	Type     Type                `json:"type"`
	SoundID  string              `json:"soundId"`
	Letter   string              `json:"letter"`
	Level    curriculum.Level    `json:"level,omitempty"`
	Position curriculum.Position `json:"position,omitempty"`
	Partner  string              `json:"partner,omitempty"`
	Message  string              `json:"message"`
	Reason   string              `json:"reason"`
	Priority int                 `json:"priority"`
}

// Generate evaluates every tracked sound, or only soundID when it is not
// empty, and returns the advice sorted by priority. Sounds missing from the
// phoneme table are skipped.
func Generate(progress map[string]*mastery.SoundProgress, soundID string) []Recommendation {
	var ids []string
	if soundID != "" {
		id := soundID
		if p, ok := phoneme.Resolve(soundID); ok {
			id = p.ID
		}
		ids = []string{id}
	} else {
		for id := range progress {
			ids = append(ids, id)
		}
		mastery.SortSoundIDs(ids)
	}

	var recs []Recommendation
	for _, id := range ids {
		sp := progress[id]
		if sp == nil {
			continue
		}
		p, ok := phoneme.ByID(id)
		if !ok {
			continue
		}
		recs = append(recs, forSound(p, sp)...)
	}

	sort.SliceStable(recs, func(i, j int) bool { return recs[i].Priority < recs[j].Priority })
	return recs
}

func forSound(p phoneme.Phoneme, sp *mastery.SoundProgress) []Recommendation {
	var recs []Recommendation
	current := sp.Levels[sp.CurrentLevel]

	if current != nil && sp.OverallAccuracy < ReviewAccuracyBelow && current.QuestionsAttempted >= ReviewMinAttempts {
		recs = append(recs, Recommendation{
			Type:     ReviewArticulation,
			SoundID:  p.ID,
			Letter:   p.Letter,
			Level:    curriculum.Isolation,
			Message:  fmt.Sprintf("راجع مخرج صوت %s", p.Letter),
			Reason:   fmt.Sprintf("دقتك %d%% - مراجعة المخرج ستساعدك", sp.OverallAccuracy),
			Priority: PriorityUrgent,
		})
	}

	if len(sp.WeakPositions) > 0 {
		pos := sp.WeakPositions[0]
		recs = append(recs, Recommendation{
			Type:     PracticePosition,
			SoundID:  p.ID,
			Letter:   p.Letter,
			Position: pos,
			Message:  fmt.Sprintf("تدرب على %s في %s", p.Letter, curriculum.PositionName(pos)),
			Reason:   "موقع ضعيف يحتاج تعزيز",
			Priority: PriorityNormal,
		})
	}

	if partner, n := mostConfused(sp.ConfusionMatrix, ConfusionRepeatCount); partner != "" {
		recs = append(recs, Recommendation{
			Type:     ReviewSimilarSounds,
			SoundID:  p.ID,
			Letter:   p.Letter,
			Partner:  partner,
			Message:  fmt.Sprintf("راجع الفرق بين %s و %s", p.Letter, partner),
			Reason:   fmt.Sprintf("خلطت بينهما %d مرات", n),
			Priority: PriorityNormal,
		})
	}

	if current != nil && current.Status == mastery.StatusMastered {
		if next, ok := curriculum.Next(sp.CurrentLevel); ok {
			recs = append(recs, Recommendation{
				Type:     AdvanceLevel,
				SoundID:  p.ID,
				Letter:   p.Letter,
				Level:    next,
				Message:  fmt.Sprintf("انتقل للمستوى التالي: %s", curriculum.DisplayName(next)),
				Reason:   fmt.Sprintf("أتقنت المستوى الحالي بدقة %d%%", current.Accuracy),
				Priority: PriorityAdvance,
			})
		}
	}
	return recs
}

// mostConfused returns the partner with the highest count at or above threshold.
// Ties go to the letter that comes first in the phoneme table.
func mostConfused(matrix map[string]int, threshold int) (string, int) {
	best, bestN := "", 0
	for letter, n := range matrix {
		if n < threshold {
			continue
		}
		if n > bestN || (n == bestN && letterBefore(letter, best)) {
			best, bestN = letter, n
		}
	}
	return best, bestN
}

// letterBefore orders letters by table position. Letters outside the table
// sort last, lexically among themselves.
func letterBefore(a, b string) bool {
	ia, ib := letterRank(a), letterRank(b)
	if ia != ib {
		return ia < ib
	}
	return a < b
}

func letterRank(letter string) int {
	if p, ok := phoneme.ByLetter(letter); ok {
		return phoneme.Index(p.ID)
	}
	return math.MaxInt
}
