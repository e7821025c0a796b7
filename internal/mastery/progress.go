package mastery

import (
	"math"
	"time"

	"github.com/abhisek/makhraj/internal/curriculum"
)

// LevelProgress is the learner's record on one level of one sound.
type LevelProgress struct {
	Level              curriculum.Level `json:"level"`
	QuestionsAttempted int              `json:"questionsAttempted"`
	QuestionsCorrect   int              `json:"questionsCorrect"`
	Accuracy           int              `json:"accuracy"`
	Status             Status           `json:"status"`
	LastAttemptAt      *time.Time       `json:"lastAttemptAt,omitempty"`
	MasteredAt         *time.Time       `json:"masteredAt,omitempty"`
}

// SoundProgress is the learner's record on one sound across all levels.
type SoundProgress struct {
	SoundID         string                              `json:"soundId"`
	Letter          string                              `json:"letter"`
	Levels          map[curriculum.Level]*LevelProgress `json:"levels"`
	OverallAccuracy int                                 `json:"overallAccuracy"`
	CurrentLevel    curriculum.Level                    `json:"currentLevel"`
	ConfusionMatrix map[string]int                      `json:"confusionMatrix,omitempty"`
	StrongPositions []curriculum.Position               `json:"strongPositions,omitempty"`
	WeakPositions   []curriculum.Position               `json:"weakPositions,omitempty"`
}

// newSoundProgress initializes all 12 levels: the entry level available and
// the rest locked, or all available when unlockAll is set.
func newSoundProgress(soundID, letter string, unlockAll bool) *SoundProgress {
	sp := &SoundProgress{
		SoundID:         soundID,
		Letter:          letter,
		Levels:          make(map[curriculum.Level]*LevelProgress, len(curriculum.Order())),
		CurrentLevel:    curriculum.First(),
		ConfusionMatrix: make(map[string]int),
	}
	for _, l := range curriculum.Order() {
		sp.Levels[l] = &LevelProgress{Level: l, Status: defaultStatus(l, unlockAll)}
	}
	return sp
}

func defaultStatus(l curriculum.Level, unlockAll bool) Status {
	if unlockAll || l == curriculum.First() {
		return StatusAvailable
	}
	return StatusLocked
}

// level returns the record for l, creating it if a loaded blob lacked it.
func (sp *SoundProgress) level(l curriculum.Level, unlockAll bool) *LevelProgress {
	if sp.Levels == nil {
		sp.Levels = make(map[curriculum.Level]*LevelProgress)
	}
	lp, ok := sp.Levels[l]
	if !ok {
		lp = &LevelProgress{Level: l, Status: defaultStatus(l, unlockAll)}
		sp.Levels[l] = lp
	}
	return lp
}

// Attempted returns the total answers across all levels.
func (sp *SoundProgress) Attempted() int {
	var n int
	for _, lp := range sp.Levels {
		n += lp.QuestionsAttempted
	}
	return n
}

// MasteredLevels returns the number of mastered levels.
func (sp *SoundProgress) MasteredLevels() int {
	var n int
	for _, lp := range sp.Levels {
		if lp.Status == StatusMastered {
			n++
		}
	}
	return n
}

// Clone returns a deep copy.
func (sp *SoundProgress) Clone() *SoundProgress {
	if sp == nil {
		return nil
	}
	c := *sp
	c.Levels = make(map[curriculum.Level]*LevelProgress, len(sp.Levels))
	for l, lp := range sp.Levels {
		cp := *lp
		c.Levels[l] = &cp
	}
	c.ConfusionMatrix = make(map[string]int, len(sp.ConfusionMatrix))
	for k, v := range sp.ConfusionMatrix {
		c.ConfusionMatrix[k] = v
	}
	c.StrongPositions = append([]curriculum.Position(nil), sp.StrongPositions...)
	c.WeakPositions = append([]curriculum.Position(nil), sp.WeakPositions...)
	return &c
}

func (sp *SoundProgress) recomputeOverall() {
	var attempted, correct int
	for _, lp := range sp.Levels {
		attempted += lp.QuestionsAttempted
		correct += lp.QuestionsCorrect
	}
	sp.OverallAccuracy = percent(correct, attempted)
}

// percent returns round(100*num/den), or 0 when den is 0.
func percent(num, den int) int {
	if den == 0 {
		return 0
	}
	return int(math.Round(float64(num) * 100 / float64(den)))
}
