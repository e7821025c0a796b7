package mastery

import (
	"testing"

	"github.com/abhisek/makhraj/internal/curriculum"
)

func TestStatistics_Empty(t *testing.T) {
	st := newTestService().Statistics()
	if st.TotalSounds != 0 || st.AverageAccuracy != 0 || len(st.StrongestSounds) != 0 {
		t.Errorf("empty stats = %+v", st)
	}
}

func TestStatistics(t *testing.T) {
	s := NewService(Options{UnlockAll: true, Now: fixedNow()})

	// beh: six mastered levels.
	for _, l := range curriculum.Order()[:6] {
		record(s, "beh", l, true, true, true, true, true)
	}
	// teh: in progress at 50%, confused with ط twice.
	s.RecordAnswer(Answer{SoundID: "teh", Level: curriculum.Isolation, Correct: true})
	s.RecordAnswer(Answer{SoundID: "teh", Level: curriculum.Isolation, ConfusedWith: "ط"})
	s.RecordAnswer(Answer{SoundID: "teh", Level: curriculum.Isolation, Correct: true})
	s.RecordAnswer(Answer{SoundID: "teh", Level: curriculum.Isolation, ConfusedWith: "ط"})
	// tah: 0%, confused with ت once.
	s.RecordAnswer(Answer{SoundID: "tah", Level: curriculum.Isolation, ConfusedWith: "ت"})

	st := s.Statistics()
	if st.TotalSounds != 3 {
		t.Errorf("TotalSounds = %d, want 3", st.TotalSounds)
	}
	if st.MasteredSounds != 1 {
		t.Errorf("MasteredSounds = %d, want 1", st.MasteredSounds)
	}
	if st.InProgressSounds != 2 {
		t.Errorf("InProgressSounds = %d, want 2", st.InProgressSounds)
	}
	// Average of non-zero accuracies: (100 + 50) / 2.
	if st.AverageAccuracy != 75 {
		t.Errorf("AverageAccuracy = %d, want 75", st.AverageAccuracy)
	}
	if st.StrongestSounds[0].SoundID != "beh" {
		t.Errorf("strongest = %+v, want beh first", st.StrongestSounds)
	}
	if st.WeakestSounds[0].SoundID != "tah" {
		t.Errorf("weakest = %+v, want tah first", st.WeakestSounds)
	}
	if len(st.CurrentFocus) != 1 || st.CurrentFocus[0].SoundID != "teh" {
		t.Errorf("focus = %+v, want only teh (0%% excluded)", st.CurrentFocus)
	}
	if len(st.MostConfusedPairs) != 1 {
		t.Fatalf("pairs = %+v, want one merged pair", st.MostConfusedPairs)
	}
	if st.MostConfusedPairs[0].Count != 3 {
		t.Errorf("pair count = %d, want 3 (both directions)", st.MostConfusedPairs[0].Count)
	}
}

func TestStatistics_PartlyMasteredSoundIsInProgress(t *testing.T) {
	s := newTestService()
	record(s, "beh", curriculum.Isolation, true, true, true, true, true)
	if got := s.Status("beh", curriculum.Isolation); got != StatusMastered {
		t.Fatalf("isolation status = %v, want %v", got, StatusMastered)
	}

	st := s.Statistics()
	if st.InProgressSounds != 1 {
		t.Errorf("InProgressSounds = %d, want 1", st.InProgressSounds)
	}
	if st.MasteredSounds != 0 {
		t.Errorf("MasteredSounds = %d, want 0", st.MasteredSounds)
	}
}

func TestStatusDisplayName(t *testing.T) {
	for _, s := range []Status{StatusLocked, StatusAvailable, StatusInProgress, StatusMastered} {
		if StatusDisplayName(s) == string(s) {
			t.Errorf("status %q has no display name", s)
		}
		if StatusIcon(s) == "?" {
			t.Errorf("status %q has no icon", s)
		}
	}
}
