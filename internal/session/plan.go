package session

import (
	"github.com/abhisek/makhraj/internal/curriculum"
)

// PlanCategory represents the reason a sound was included in the plan.
type PlanCategory string

const (
	CategoryFrontier PlanCategory = "frontier"
	CategoryReview   PlanCategory = "review"
	CategoryBooster  PlanCategory = "booster"
)

// PlanSlot is one exercise in a practice plan.
type PlanSlot struct {
	SoundID  string
	Letter   string
	Level    curriculum.Level
	Position curriculum.Position // empty for the whole level
	Partner  string              // set for similar-sound reviews
	Category PlanCategory
	Reason   string
}

// Plan is the ordered list of exercises for one sitting.
type Plan struct {
	Slots []PlanSlot
}

// DefaultTotalSlots is the default number of slots in a practice plan.
const DefaultTotalSlots = 5
