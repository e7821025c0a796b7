package progressmap

import (
	"context"
	"strings"
	"testing"

	"github.com/abhisek/makhraj/internal/curriculum"
	"github.com/abhisek/makhraj/internal/mastery"
	"github.com/abhisek/makhraj/internal/phoneme"
	"github.com/abhisek/makhraj/internal/trainer"
)

func TestSoundDetail_ShowsLevelAccuracyBar(t *testing.T) {
	tr := trainer.New(context.Background(), trainer.Options{Seed: 1})
	for _, correct := range []bool{true, true, true, false} {
		tr.RecordAnswer("", mastery.Answer{SoundID: "beh", Level: curriculum.Isolation, Correct: correct})
	}

	beh, _ := phoneme.ByID("beh")
	d := newSoundDetail(tr, beh)
	if d.cursor != 0 {
		t.Fatalf("cursor = %d, want isolation", d.cursor)
	}
	view := d.View(100, 40)
	if !strings.Contains(view, "3/4") || !strings.Contains(view, "│") {
		t.Errorf("detail view lacks the 3/4 accuracy bar:\n%s", view)
	}

	untouched, _ := phoneme.ByID("meem")
	if view := newSoundDetail(tr, untouched).View(100, 40); strings.Contains(view, "│") {
		t.Error("unpractised sound should not show an accuracy bar")
	}
}
