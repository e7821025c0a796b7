package session

import (
	"sort"

	"github.com/abhisek/makhraj/internal/curriculum"
	"github.com/abhisek/makhraj/internal/mastery"
	"github.com/abhisek/makhraj/internal/phoneme"
	"github.com/abhisek/makhraj/internal/recommend"
)

// BuildPlan creates a practice plan from recorded progress: mostly frontier
// work (the next level of sounds in progress, then new sounds), one review
// taken from the recommendations and one booster replaying a mastered level.
// Unused review and booster slots go to the frontier.
func BuildPlan(progress map[string]*mastery.SoundProgress, total int) *Plan {
	if total <= 0 {
		total = DefaultTotalSlots
	}

	reviewCount, boosterCount := 1, 1
	if len(progress) == 0 || total < 3 {
		reviewCount, boosterCount = 0, 0
	}

	var slots []PlanSlot
	used := make(map[string]bool)

	if reviewCount > 0 {
		for _, s := range selectReviews(progress, reviewCount) {
			slots = append(slots, s)
			used[s.SoundID] = true
		}
	}
	if boosterCount > 0 {
		for _, s := range selectBoosters(progress, boosterCount, used) {
			slots = append(slots, s)
			used[s.SoundID] = true
		}
	}

	frontier := selectFrontier(progress, total-len(slots), used)
	return &Plan{Slots: append(frontier, slots...)}
}

// selectReviews turns the most urgent recommendations into review slots.
func selectReviews(progress map[string]*mastery.SoundProgress, count int) []PlanSlot {
	var out []PlanSlot
	for _, rec := range recommend.Generate(progress, "") {
		if len(out) == count {
			break
		}
		if rec.Type == recommend.AdvanceLevel {
			continue
		}
		level, pos := rec.Level, rec.Position
		if level == "" {
			level = progress[rec.SoundID].CurrentLevel
		}
		if pos != "" && !curriculum.SupportsPositions(level) {
			pos = ""
		}
		out = append(out, PlanSlot{
			SoundID:  rec.SoundID,
			Letter:   rec.Letter,
			Level:    level,
			Position: pos,
			Partner:  rec.Partner,
			Category: CategoryReview,
			Reason:   rec.Message,
		})
	}
	return out
}

// selectBoosters picks sounds with the highest overall accuracy and replays
// their highest mastered level.
func selectBoosters(progress map[string]*mastery.SoundProgress, count int, used map[string]bool) []PlanSlot {
	type candidate struct {
		sp    *mastery.SoundProgress
		level curriculum.Level
	}
	var candidates []candidate
	for _, id := range sortedIDs(progress) {
		sp := progress[id]
		if used[id] {
			continue
		}
		best := curriculum.Level("")
		for _, l := range curriculum.Order() {
			if lp := sp.Levels[l]; lp != nil && lp.Status == mastery.StatusMastered {
				best = l
			}
		}
		if best != "" {
			candidates = append(candidates, candidate{sp: sp, level: best})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].sp.OverallAccuracy > candidates[j].sp.OverallAccuracy
	})

	var out []PlanSlot
	for i := 0; i < count && i < len(candidates); i++ {
		c := candidates[i]
		out = append(out, PlanSlot{
			SoundID:  c.sp.SoundID,
			Letter:   c.sp.Letter,
			Level:    c.level,
			Category: CategoryBooster,
			Reason:   "تمرين تثبيت لمستوى متقن",
		})
	}
	return out
}

// selectFrontier continues sounds in progress in phoneme-table order, then
// starts new sounds from the top of the table.
func selectFrontier(progress map[string]*mastery.SoundProgress, count int, used map[string]bool) []PlanSlot {
	var out []PlanSlot
	for _, id := range sortedIDs(progress) {
		if len(out) >= count {
			return out
		}
		sp := progress[id]
		if used[id] || sp.MasteredLevels() == len(curriculum.Order()) {
			continue
		}
		level, pos := recommend.NextExercise(sp)
		out = append(out, PlanSlot{
			SoundID:  id,
			Letter:   sp.Letter,
			Level:    level,
			Position: pos,
			Category: CategoryFrontier,
			Reason:   "متابعة التقدم",
		})
		used[id] = true
	}

	for _, p := range phoneme.All() {
		if len(out) >= count {
			break
		}
		if used[p.ID] || progress[p.ID] != nil {
			continue
		}
		out = append(out, PlanSlot{
			SoundID:  p.ID,
			Letter:   p.Letter,
			Level:    curriculum.First(),
			Category: CategoryFrontier,
			Reason:   "صوت جديد",
		})
	}
	return out
}

func sortedIDs(progress map[string]*mastery.SoundProgress) []string {
	ids := make([]string, 0, len(progress))
	for id, sp := range progress {
		if sp != nil {
			ids = append(ids, id)
		}
	}
	mastery.SortSoundIDs(ids)
	return ids
}
