package mastery

import "github.com/abhisek/makhraj/internal/curriculum"

// Status is a level's position in the mastery lifecycle.
type Status string

const (
	StatusLocked     Status = "locked"
	StatusAvailable  Status = "available"
	StatusInProgress Status = "in_progress"
	StatusMastered   Status = "mastered"
)

const (
	// MasteryThreshold is the accuracy (percent) a level needs to be mastered.
	MasteryThreshold = 80

	// MinQuestionsForMastery is the number of answers a level needs before
	// it can be mastered.
	MinQuestionsForMastery = 5

	// MinPositionSamples is the number of answers at a word position needed
	// before the position is classified as strong or weak.
	MinPositionSamples = 3

	// StrongPositionAccuracy and WeakPositionAccuracy bound position
	// classification (percent).
	StrongPositionAccuracy = 80
	WeakPositionAccuracy   = 50

	// MasteredLevelsForSound is the number of mastered levels after which a
	// sound counts as mastered in statistics.
	MasteredLevelsForSound = 6
)

// StateTransition records a level status change for display and event logging.
type StateTransition struct {
	SoundID string
	Letter  string
	Level   curriculum.Level
	From    Status
	To      Status
	Trigger string // "first-attempt", "mastered", "mastery-lost", "level-unlocked"
}

// determineStatus computes a level's status from its counters. current is
// kept for untouched levels so locked levels stay locked.
func determineStatus(attempted, accuracy int, current Status) Status {
	if attempted == 0 {
		if current == StatusLocked {
			return StatusLocked
		}
		return StatusAvailable
	}
	if attempted < MinQuestionsForMastery {
		return StatusInProgress
	}
	if accuracy >= MasteryThreshold {
		return StatusMastered
	}
	return StatusInProgress
}

func transitionTrigger(from, to Status) string {
	switch {
	case to == StatusMastered:
		return "mastered"
	case from == StatusMastered:
		return "mastery-lost"
	case to == StatusInProgress:
		return "first-attempt"
	default:
		return "status-change"
	}
}
