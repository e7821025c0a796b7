package recommend

import (
	"testing"

	"github.com/abhisek/makhraj/internal/curriculum"
	"github.com/abhisek/makhraj/internal/mastery"
)

func soundAt(id, letter string, current curriculum.Level, lp mastery.LevelProgress, overall int) *mastery.SoundProgress {
	lp.Level = current
	return &mastery.SoundProgress{
		SoundID:         id,
		Letter:          letter,
		Levels:          map[curriculum.Level]*mastery.LevelProgress{current: &lp},
		OverallAccuracy: overall,
		CurrentLevel:    current,
		ConfusionMatrix: map[string]int{},
	}
}

func types(recs []Recommendation) []Type {
	out := make([]Type, len(recs))
	for i, r := range recs {
		out[i] = r.Type
	}
	return out
}

func TestGenerate_Empty(t *testing.T) {
	if got := Generate(nil, ""); len(got) != 0 {
		t.Errorf("Generate(nil) = %v, want empty", got)
	}
}

func TestGenerate_ReviewArticulation(t *testing.T) {
	tests := []struct {
		name      string
		attempted int
		overall   int
		want      bool
	}{
		{"low accuracy enough attempts", 3, 33, true},
		{"low accuracy too few attempts", 2, 0, false},
		{"accuracy at threshold", 4, 50, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sp := soundAt("beh", "ب", curriculum.Isolation,
				mastery.LevelProgress{QuestionsAttempted: tt.attempted, Status: mastery.StatusInProgress}, tt.overall)
			recs := Generate(map[string]*mastery.SoundProgress{"beh": sp}, "")
			got := len(recs) == 1 && recs[0].Type == ReviewArticulation && recs[0].Priority == PriorityUrgent
			if got != tt.want {
				t.Errorf("review_articulation emitted = %v, want %v (recs %v)", got, tt.want, types(recs))
			}
		})
	}
}

func TestGenerate_AllRulesSortedByPriority(t *testing.T) {
	sp := soundAt("teh", "ت", curriculum.RealWords,
		mastery.LevelProgress{QuestionsAttempted: 10, QuestionsCorrect: 9, Accuracy: 90, Status: mastery.StatusMastered}, 40)
	sp.WeakPositions = []curriculum.Position{curriculum.Final, curriculum.Medial}
	sp.ConfusionMatrix = map[string]int{"ط": 3, "د": 4, "ث": 1}

	recs := Generate(map[string]*mastery.SoundProgress{"teh": sp}, "")
	want := []Type{ReviewArticulation, PracticePosition, ReviewSimilarSounds, AdvanceLevel}
	got := types(recs)
	if len(got) != len(want) {
		t.Fatalf("types = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("types[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if recs[1].Position != curriculum.Final {
		t.Errorf("position = %q, want first weak position final", recs[1].Position)
	}
	if recs[2].Partner != "د" {
		t.Errorf("partner = %q, want most confused د", recs[2].Partner)
	}
	if recs[3].Level != curriculum.Phrases {
		t.Errorf("advance to %q, want phrases", recs[3].Level)
	}
}

func TestGenerate_NoAdvanceFromLastLevel(t *testing.T) {
	sp := soundAt("teh", "ت", curriculum.Spontaneous,
		mastery.LevelProgress{QuestionsAttempted: 5, QuestionsCorrect: 5, Accuracy: 100, Status: mastery.StatusMastered}, 100)
	if recs := Generate(map[string]*mastery.SoundProgress{"teh": sp}, ""); len(recs) != 0 {
		t.Errorf("recs = %v, want none", types(recs))
	}
}

func TestGenerate_ConfusionBelowThreshold(t *testing.T) {
	sp := soundAt("teh", "ت", curriculum.Isolation, mastery.LevelProgress{Status: mastery.StatusAvailable}, 0)
	sp.ConfusionMatrix = map[string]int{"ط": 1}
	if recs := Generate(map[string]*mastery.SoundProgress{"teh": sp}, ""); len(recs) != 0 {
		t.Errorf("recs = %v, want none", types(recs))
	}
}

func TestGenerate_ConfusionTieFollowsTableOrder(t *testing.T) {
	sp := soundAt("teh", "ت", curriculum.Isolation, mastery.LevelProgress{Status: mastery.StatusAvailable}, 0)
	// ط precedes ث in the table but sorts after it lexically.
	sp.ConfusionMatrix = map[string]int{"ث": 3, "ط": 3}
	for range 10 {
		recs := Generate(map[string]*mastery.SoundProgress{"teh": sp}, "")
		if len(recs) != 1 || recs[0].Partner != "ط" {
			t.Fatalf("recs = %+v, want one review with ط", recs)
		}
	}
}

func TestGenerate_SingleSoundAndOrder(t *testing.T) {
	weak := func(id, letter string) *mastery.SoundProgress {
		sp := soundAt(id, letter, curriculum.Isolation, mastery.LevelProgress{Status: mastery.StatusAvailable}, 0)
		sp.WeakPositions = []curriculum.Position{curriculum.Initial}
		return sp
	}
	progress := map[string]*mastery.SoundProgress{
		"feh":     weak("feh", "ف"),
		"hamza":   weak("hamza", "ء"),
		"mystery": weak("mystery", "?"),
	}

	all := Generate(progress, "")
	if len(all) != 2 {
		t.Fatalf("len = %d, want 2 (unknown sound skipped)", len(all))
	}
	if all[0].SoundID != "hamza" || all[1].SoundID != "feh" {
		t.Errorf("order = %s,%s, want hamza,feh", all[0].SoundID, all[1].SoundID)
	}

	one := Generate(progress, "ف")
	if len(one) != 1 || one[0].SoundID != "feh" {
		t.Errorf("Generate by letter = %+v, want only feh", one)
	}
	if got := Generate(progress, "beh"); len(got) != 0 {
		t.Errorf("untracked sound = %v, want none", got)
	}
}

func TestNextExercise(t *testing.T) {
	if l, p := NextExercise(nil); l != curriculum.Isolation || p != "" {
		t.Errorf("nil progress = (%q, %q), want (isolation, \"\")", l, p)
	}

	sp := soundAt("beh", "ب", curriculum.Phrases, mastery.LevelProgress{Status: mastery.StatusInProgress}, 60)
	sp.WeakPositions = []curriculum.Position{curriculum.Medial}
	if l, p := NextExercise(sp); l != curriculum.Phrases || p != curriculum.Medial {
		t.Errorf("weak position = (%q, %q), want (phrases, medial)", l, p)
	}

	sp = soundAt("beh", "ب", curriculum.CV, mastery.LevelProgress{Status: mastery.StatusMastered}, 90)
	sp.WeakPositions = []curriculum.Position{curriculum.Medial}
	if l, p := NextExercise(sp); l != curriculum.VC || p != "" {
		t.Errorf("mastered cv = (%q, %q), want (vc, \"\")", l, p)
	}

	sp = soundAt("beh", "ب", curriculum.VCV, mastery.LevelProgress{Status: mastery.StatusInProgress}, 70)
	if l, _ := NextExercise(sp); l != curriculum.VCV {
		t.Errorf("in progress = %q, want vcv", l)
	}
}
