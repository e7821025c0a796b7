package plan

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/makhraj/internal/curriculum"
	"github.com/abhisek/makhraj/internal/router"
	"github.com/abhisek/makhraj/internal/session"
	"github.com/abhisek/makhraj/internal/trainer"
)

func TestPlanScreen_NewLearnerGetsFrontier(t *testing.T) {
	s := New(trainer.New(context.Background(), trainer.Options{Seed: 3}))
	if got := len(s.plan.Slots); got != session.DefaultTotalSlots {
		t.Fatalf("slots = %d, want %d", got, session.DefaultTotalSlots)
	}
	for _, slot := range s.plan.Slots {
		if slot.Category != session.CategoryFrontier || slot.Level != curriculum.Isolation {
			t.Errorf("slot = %+v, want frontier isolation", slot)
		}
	}
	if len(s.menu.Items) != len(s.plan.Slots) {
		t.Errorf("menu items = %d, want one per slot", len(s.menu.Items))
	}
}

func TestPlanScreen_EnterPushesPractice(t *testing.T) {
	s := New(trainer.New(context.Background(), trainer.Options{Seed: 3}))
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	inner := cmd()
	if f, ok := inner.(tea.Cmd); ok {
		inner = f()
	}
	if _, ok := inner.(router.PushScreenMsg); !ok {
		t.Errorf("msg = %T, want router.PushScreenMsg", inner)
	}
}

func TestSlotLabel(t *testing.T) {
	label := SlotLabel(session.PlanSlot{Letter: "ب", Level: curriculum.RealWords, Position: curriculum.Final, Partner: "م", Category: session.CategoryReview})
	for _, want := range []string{"review", "ب", "↔ م", curriculum.PositionName(curriculum.Final)} {
		if !strings.Contains(label, want) {
			t.Errorf("label %q lacks %q", label, want)
		}
	}
}
